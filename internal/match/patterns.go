package match

import "github.com/pdevries/ontoclass/internal/model"

// patternSpec is the raw, uncompiled pattern data for one category:
// literal keyword cues, structural regex cues, links into the legal
// lexicon, and the category base weight.
type patternSpec struct {
	keywords   []string
	patterns   []string
	legalTerms []string
	weight     float64
}

// builtinPatternSpecs returns the default pattern data. Keywords are
// matched as case-insensitive substrings; patterns are compiled once at
// matcher construction. Raw input is never compiled.
func builtinPatternSpecs() map[model.UFOCategory]patternSpec {
	return map[model.UFOCategory]patternSpec{
		model.CategoryKind: {
			keywords: []string{
				"roerende zaak", "onroerende zaak", "natuurlijke persoon",
				"rechtspersoon", "zelfstandig object", "voorwerp",
				"stoffelijk object", "gebouw", "perceel", "voertuig",
			},
			patterns: []string{
				`een\s+(roerende|onroerende)\s+zaak`,
				`zoals\s+een\b`,
				`\b(auto|fiets|woning|schip|dier)\b`,
				`(document|akte)\b`,
			},
			legalTerms: []string{
				"testament", "codicil", "jaarrekening", "statuten", "aandeel",
			},
			weight: 1.0,
		},
		model.CategoryEvent: {
			keywords: []string{
				"gebeurtenis", "procedure", "proces", "handeling",
				"plechtigheid", "zitting", "wordt behandeld", "vindt plaats",
				"voltrekking", "sluiten van",
			},
			patterns: []string{
				`\bhet\s+\p{L}+en\b`,
				`wordt\s+(behandeld|voltrokken|uitgesproken|gesloten|ontbonden|opgelegd|verleend)`,
				`\b\d+\s*(dagen|weken|maanden|jaren)\b`,
				`\b(datum|tijdstip|gedurende|tijdens)\b`,
			},
			legalTerms: []string{
				"echtscheiding", "levering", "aanhouding", "vervolging",
				"fusie", "splitsing", "getuigenverhoor", "inbeslagneming",
				"rechtszaak",
			},
			weight: 1.0,
		},
		model.CategoryRole: {
			keywords: []string{
				"in de hoedanigheid van", "treedt op als", "optreedt als",
				"handelt als", "in de rol van", "rechter", "advocaat",
				"notaris", "ambtenaar", "deurwaarder", "getuige", "eiser",
				"gedaagde",
			},
			patterns: []string{
				`\b(koper|verkoper|huurder|verhuurder|werkgever|werknemer|voogd|erfgenaam)\b`,
			},
			legalTerms: []string{
				"curator", "bewindvoerder", "executeur", "toezichthouder",
				"officier van justitie", "raadsman", "aandeelhouder",
				"bestuurder", "commissaris", "legataris", "pleegouder",
				"gezinsvoogd",
			},
			weight: 1.0,
		},
		model.CategoryRelator: {
			keywords: []string{
				"juridische band", "band tussen", "rechtsbetrekking",
				"rechtsverhouding", "overeenkomst tussen", "relatie tussen",
				"verhouding tussen", "verbindt",
			},
			patterns: []string{
				`tussen\s+(?:\p{L}+\s+){0,3}(partijen|personen|echtgenoten)`,
				`\p{L}+overeenkomst\b`,
			},
			legalTerms: []string{
				"overeenkomst", "verbintenis", "huwelijk",
				"geregistreerd partnerschap", "borgtocht",
				"samenlevingscontract", "aandeelhoudersovereenkomst",
			},
			weight: 1.0,
		},
		model.CategoryMode: {
			keywords: []string{
				"bevoegdheid", "verplichting", "verantwoordelijkheid",
				"aanspraak", "toestemming",
			},
			patterns: []string{
				`recht\s+om\s+te`,
				`verplichting\s+tot`,
				`bevoegd\s+(is\s+)?om`,
			},
			legalTerms: []string{
				"vordering", "volmacht", "stemrecht", "retentierecht",
				"zwijgrecht", "spreekrecht", "adviesrecht",
				"instemmingsrecht", "voorkeursrecht",
			},
			weight: 0.9,
		},
		model.CategoryQuality: {
			keywords: []string{
				"eigenschap", "kenmerk", "mate van", "geldigheid",
			},
			patterns: []string{
				`de\s+(ernst|zwaarte|hoogte|omvang|geldigheid)\s+van`,
			},
			legalTerms: []string{
				"goede trouw", "toerekenbaarheid", "wederrechtelijkheid",
				"draagkracht",
			},
			weight: 0.9,
		},
		model.CategoryQuantity: {
			keywords: []string{
				"bedrag", "geldsom", "hoeveelheid", "percentage",
			},
			patterns: []string{
				`\b\d+(?:[.,]\d+)?\s*(?:euro|procent|%)`,
				`een\s+bedrag\s+van`,
				`\b(som|totaal)\s+van\b`,
			},
			legalTerms: []string{
				"geldboete", "dwangsom", "griffierecht",
				"transitievergoeding", "legitieme portie", "dividend",
				"nominale waarde",
			},
			weight: 0.9,
		},
		model.CategoryCollective: {
			keywords: []string{
				"groep", "college", "commissie", "raad van",
				"vergadering van", "gezamenlijk", "collectief",
			},
			patterns: []string{
				`groep\s+van`,
				`bestaande\s+uit\b`,
				`leden\s+van`,
			},
			legalTerms: []string{
				"ondernemingsraad", "algemene vergadering",
				"raad van commissarissen", "maatschap", "vereniging",
				"cooperatie",
			},
			weight: 0.9,
		},
		model.CategoryFixedCollection: {
			keywords: []string{
				"vaste samenstelling", "voltallige", "drietal", "vijftal",
				"meervoudige kamer",
			},
			patterns: []string{
				`bestaande\s+uit\s+(twee|drie|vijf|zeven)\s+(leden|rechters|personen)`,
				`uit\s+precies\s+\d+`,
			},
			weight: 0.8,
		},
		model.CategoryPhase: {
			keywords: []string{
				"fase", "stadium", "tijdelijke toestand", "zolang", "totdat",
			},
			patterns: []string{
				`\b(minderjarig|meerderjarig|failliet)\p{L}*\b`,
				`in\s+staat\s+van\s+(faillissement|surseance)`,
			},
			legalTerms: []string{
				"minderjarigheid", "meerderjarigheid", "proeftijd",
				"voorlopige hechtenis", "surseance van betaling",
			},
			weight: 0.9,
		},
		model.CategorySubkind: {
			keywords: []string{
				"bijzondere vorm van", "soort van", "subtype",
			},
			patterns: []string{
				`een\s+(bijzondere\s+)?(vorm|soort|type|variant)\s+van`,
				`onderscheiden\s+(naar|in)`,
			},
			weight: 0.9,
		},
		model.CategoryCategory: {
			keywords: []string{
				"overkoepelend", "verzamelbegrip", "verzamelnaam",
				"algemene aanduiding",
			},
			patterns: []string{
				`verzamel(naam|begrip)\s+voor`,
				`elk(e)?\s+\p{L}+\s+die\b`,
			},
			weight: 0.8,
		},
		model.CategoryMixin: {
			keywords: []string{
				"van toepassing op", "ongeacht de aard", "ongeacht of",
			},
			patterns: []string{
				`zowel\s+\p{L}+\s+als\s+\p{L}+`,
			},
			weight: 0.7,
		},
		model.CategoryRoleMixin: {
			keywords: []string{
				"wederpartij", "rechthebbende", "derde die",
			},
			patterns: []string{
				`(iedere|elke)\s+(partij|betrokkene|belanghebbende|persoon)\s+die`,
			},
			legalTerms: []string{
				"belanghebbende",
			},
			weight: 0.7,
		},
		model.CategoryPhaseMixin: {
			keywords: []string{
				"tijdelijk van aard", "gedurende de periode",
				"in de toestand",
			},
			patterns: []string{
				`zolang\s+\p{L}+\s+(duurt|voortduurt)`,
				`gedurende\s+de\s+(periode|looptijd)`,
			},
			weight: 0.7,
		},
		model.CategoryAbstract: {
			keywords: []string{
				"rechtsbeginsel", "abstract begrip", "grondbeginsel",
			},
			patterns: []string{
				`het\s+beginsel\s+van`,
				`\bnorm(en)?\b`,
				`\bbegrip\b`,
			},
			legalTerms: []string{
				"legaliteitsbeginsel", "opportuniteitsbeginsel",
				"vertrouwensbeginsel", "gelijkheidsbeginsel",
				"redelijkheid en billijkheid",
			},
			weight: 0.8,
		},
	}
}
