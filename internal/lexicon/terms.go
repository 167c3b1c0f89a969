package lexicon

// Legal domain names. These are the keys callers pass as classification
// context to activate the domain bonus.
const (
	DomainCivil          = "burgerlijk_recht"
	DomainCriminal       = "strafrecht"
	DomainAdministrative = "bestuursrecht"
	DomainLabor          = "arbeidsrecht"
	DomainFamily         = "familierecht"
	DomainCorporate      = "ondernemingsrecht"
)

// domainOrder fixes the iteration order of domains.
var domainOrder = []string{
	DomainCivil,
	DomainCriminal,
	DomainAdministrative,
	DomainLabor,
	DomainFamily,
	DomainCorporate,
}

// domainTerms is the built-in vocabulary, partitioned by legal domain.
// Terms are lowercase; multiword terms are kept as written in doctrine.
var domainTerms = map[string][]string{
	DomainCivil: {
		"overeenkomst", "verbintenis", "roerende zaak", "onroerende zaak",
		"eigendom", "bezit", "houderschap", "vordering", "schuldeiser",
		"schuldenaar", "nakoming", "wanprestatie", "ontbinding",
		"opschorting", "verzuim", "ingebrekestelling", "schadevergoeding",
		"onrechtmatige daad", "aansprakelijkheid", "risicoaansprakelijkheid",
		"toerekenbaarheid", "causaal verband", "eigen schuld",
		"koopovereenkomst", "huurovereenkomst", "bruikleen", "pacht",
		"lastgeving", "volmacht", "vertegenwoordiging", "rechtshandeling",
		"wilsverklaring", "aanbod", "aanvaarding", "dwaling", "bedrog",
		"bedreiging", "misbruik van omstandigheden", "nietigheid",
		"vernietigbaarheid", "bekrachtiging", "conversie", "verjaring",
		"stuiting", "klachtplicht", "levering", "overdracht",
		"bezitsverschaffing", "cessie", "subrogatie", "verrekening",
		"hoofdelijkheid", "borgtocht", "pandrecht", "hypotheek",
		"vruchtgebruik", "erfdienstbaarheid", "opstalrecht", "erfpacht",
		"appartementsrecht", "mandeligheid", "natrekking", "vermenging",
		"zaaksvorming", "verkrijgende verjaring", "bevrijdende verjaring",
		"goede trouw", "redelijkheid en billijkheid", "algemene voorwaarden",
		"exoneratiebeding", "boetebeding", "ontbindende voorwaarde",
		"opschortende voorwaarde", "derdenbeding",
		"kwalitatieve verplichting", "kettingbeding", "retentierecht",
		"reclamerecht", "eigendomsvoorbehoud", "consumentenkoop",
		"non-conformiteit", "garantie", "bedenktijd", "precontractuele fase",
		"onderhandeling", "schuldoverneming", "contractsoverneming",
		"afstand van recht", "rechtsverwerking",
		"ongerechtvaardigde verrijking", "onverschuldigde betaling",
		"zaakwaarneming", "dwangsom", "executie", "beslag",
		"conservatoir beslag", "executoriaal beslag",
	},
	DomainCriminal: {
		"misdrijf", "overtreding", "verdachte", "dagvaarding",
		"tenlastelegging", "opzet", "schuld", "voorbedachte raad",
		"wederrechtelijkheid", "strafuitsluitingsgrond",
		"rechtvaardigingsgrond", "schulduitsluitingsgrond", "noodweer",
		"noodweerexces", "overmacht", "ontoerekeningsvatbaarheid", "poging",
		"voorbereiding", "deelneming", "medeplegen", "medeplichtigheid",
		"uitlokking", "doen plegen", "daderschap", "diefstal",
		"verduistering", "oplichting", "afpersing", "heling", "witwassen",
		"valsheid in geschrifte", "mishandeling", "doodslag", "moord",
		"dood door schuld", "vernieling", "huisvredebreuk", "belaging",
		"smaad", "laster", "meineed", "omkoping", "ambtsmisdrijf",
		"opsporing", "aanhouding", "inverzekeringstelling",
		"voorlopige hechtenis", "bewaring", "gevangenhouding",
		"doorzoeking", "inbeslagneming", "sepot", "transactie",
		"strafbeschikking", "vervolging", "opportuniteitsbeginsel",
		"legaliteitsbeginsel", "ne bis in idem", "onschuldpresumptie",
		"zwijgrecht", "cautie", "raadsman", "officier van justitie",
		"rechter-commissaris", "getuigenverhoor", "deskundigenbericht",
		"bewijsmiddel", "bewijsminimum", "onrechtmatig verkregen bewijs",
		"bewijsuitsluiting", "strafmaat", "gevangenisstraf", "hechtenis",
		"taakstraf", "geldboete", "voorwaardelijke straf", "proeftijd",
		"terbeschikkingstelling", "maatregel", "ontnemingsvordering",
		"vrijspraak", "ontslag van alle rechtsvervolging", "veroordeling",
		"hoger beroep", "cassatie", "gratie", "recidive", "reclassering",
		"slachtofferverklaring", "spreekrecht", "rechtszaak",
	},
	DomainAdministrative: {
		"besluit", "beschikking", "beleidsregel", "bestuursorgaan",
		"belanghebbende", "aanvraag", "bezwaar", "bezwaarschrift", "beroep",
		"beroepschrift", "voorlopige voorziening", "zienswijze",
		"vergunning", "omgevingsvergunning", "ontheffing", "vrijstelling",
		"concessie", "subsidie", "subsidieplafond",
		"last onder bestuursdwang", "last onder dwangsom",
		"bestuurlijke boete", "handhaving", "gedogen", "gedoogbeschikking",
		"toezichthouder", "zorgvuldigheidsbeginsel", "motiveringsbeginsel",
		"evenredigheidsbeginsel", "vertrouwensbeginsel",
		"gelijkheidsbeginsel", "rechtszekerheidsbeginsel",
		"verbod van willekeur", "specialiteitsbeginsel", "hoorplicht",
		"mandaat", "delegatie", "attributie", "discretionaire bevoegdheid",
		"gebonden bevoegdheid", "beleidsvrijheid", "beoordelingsvrijheid",
		"marginale toetsing", "formele rechtskracht", "bekendmaking",
		"inwerkingtreding", "terinzagelegging", "bestemmingsplan",
		"omgevingsplan", "planschade", "nadeelcompensatie", "onteigening",
		"gemeenschappelijke regeling", "autonome verordening", "medebewind",
		"algemeen verbindend voorschrift", "ministeriele regeling",
		"algemene maatregel van bestuur", "koninklijk besluit",
		"wet in formele zin", "wet in materiele zin", "bestuursrechter",
		"administratief beroep", "klachtprocedure", "nationale ombudsman",
		"openbaarheid van bestuur", "geheimhoudingsplicht",
		"bestuurlijke lus", "proceskostenveroordeling", "griffierecht",
		"termijnoverschrijding", "verschoonbare termijnoverschrijding",
		"fictieve weigering", "dwangsom bij niet tijdig beslissen",
		"positieve fictieve beschikking", "uniforme openbare voorbereidingsprocedure",
	},
	DomainLabor: {
		"arbeidsovereenkomst", "werkgever", "werknemer", "loon",
		"loondoorbetaling", "arbeidsongeschiktheid", "ziekmelding",
		"re-integratie", "bedrijfsarts", "proeftijdbeding",
		"concurrentiebeding", "relatiebeding", "geheimhoudingsbeding",
		"nevenwerkzaamhedenbeding", "studiekostenbeding",
		"arbeidsvoorwaarden", "collectieve arbeidsovereenkomst",
		"algemeen verbindend verklaring", "ketenregeling",
		"oproepovereenkomst", "nulurencontract", "min-maxcontract",
		"payrolling", "uitzendovereenkomst", "uitzendbeding", "detachering",
		"schijnzelfstandigheid", "gezagsverhouding", "ontslag",
		"ontslag op staande voet", "dringende reden", "opzegging",
		"opzegtermijn", "opzegverbod", "transitievergoeding",
		"billijke vergoeding", "vaststellingsovereenkomst",
		"ontbindingsverzoek", "herplaatsing", "bedrijfseconomisch ontslag",
		"afspiegelingsbeginsel", "wederindiensttredingsvoorwaarde",
		"disfunctioneren", "verbetertraject", "verwijtbaar handelen",
		"verstoorde arbeidsverhouding", "vakantiedagen", "vakantiebijslag",
		"ouderschapsverlof", "zwangerschapsverlof", "bevallingsverlof",
		"geboorteverlof", "zorgverlof", "calamiteitenverlof",
		"onbetaald verlof", "arbeidsomstandigheden",
		"risico-inventarisatie", "bedrijfsongeval", "beroepsziekte",
		"werkgeversaansprakelijkheid", "goed werkgeverschap",
		"goed werknemerschap", "instructierecht",
		"eenzijdig wijzigingsbeding", "medezeggenschap", "ondernemingsraad",
		"instemmingsrecht", "adviesrecht", "personeelsvertegenwoordiging",
		"collectief ontslag", "overgang van onderneming", "loonsanctie",
		"deskundigenoordeel", "slapend dienstverband", "pensioenontslag",
		"werktijdverkorting", "thuiswerkregeling", "functioneringsgesprek",
		"beoordelingsgesprek", "demotie", "schorsing werknemer",
		"op non-actiefstelling", "getuigschrift", "eindafrekening",
	},
	DomainFamily: {
		"huwelijk", "geregistreerd partnerschap", "samenlevingscontract",
		"huwelijkse voorwaarden", "gemeenschap van goederen",
		"beperkte gemeenschap", "koude uitsluiting", "verrekenbeding",
		"echtscheiding", "scheiding van tafel en bed",
		"echtscheidingsconvenant", "ouderschapsplan", "alimentatie",
		"partneralimentatie", "kinderalimentatie", "behoefte", "draagkracht",
		"indexering", "nihilstelling", "ouderlijk gezag",
		"gezamenlijk gezag", "eenhoofdig gezag", "voogdij", "voogd",
		"gezagsregister", "omgangsregeling", "zorgregeling",
		"hoofdverblijfplaats", "co-ouderschap", "informatieplicht",
		"afstamming", "erkenning", "ontkenning vaderschap",
		"gerechtelijke vaststelling vaderschap", "adoptie",
		"stiefouderadoptie", "draagmoederschap", "biologische ouder",
		"juridische ouder", "meerderjarigheid", "minderjarigheid",
		"handlichting", "curatele", "bewind", "mentorschap",
		"onderbewindstelling", "ondercuratelestelling",
		"ondertoezichtstelling", "uithuisplaatsing",
		"kinderbeschermingsmaatregel", "gezinsvoogd",
		"raad voor de kinderbescherming", "jeugdbescherming", "pleegzorg",
		"pleegouder", "geslachtsnaam", "voornaamswijziging", "erfgenaam",
		"erflater", "nalatenschap", "testament", "legaat", "legataris",
		"legitieme portie", "legitimaris", "onterving",
		"wettelijke verdeling", "beneficiaire aanvaarding",
		"zuivere aanvaarding", "verwerping", "vereffening", "executeur",
		"codicil", "uiterste wilsbeschikking", "schenking", "gift",
		"erfbelasting", "boedelbeschrijving", "verdeling nalatenschap",
		"onwaardigheid", "plaatsvervulling", "aanwas", "curator",
		"bewindvoerder", "mentor",
	},
	DomainCorporate: {
		"rechtspersoon", "natuurlijke persoon", "besloten vennootschap",
		"naamloze vennootschap", "vennootschap onder firma",
		"commanditaire vennootschap", "maatschap", "eenmanszaak",
		"cooperatie", "onderlinge waarborgmaatschappij", "vereniging",
		"stichting", "statuten", "oprichtingsakte",
		"inschrijving handelsregister", "kamer van koophandel", "aandeel",
		"aandeelhouder", "aandelenregister", "certificering van aandelen",
		"stemrecht", "winstrecht", "dividend", "agio", "nominale waarde",
		"geplaatst kapitaal", "gestort kapitaal", "maatschappelijk kapitaal",
		"emissie", "voorkeursrecht", "blokkeringsregeling",
		"aanbiedingsregeling", "algemene vergadering", "bestuur",
		"bestuurder", "raad van commissarissen", "commissaris",
		"uitvoerende bestuurder", "niet-uitvoerende bestuurder",
		"tegenstrijdig belang", "decharge", "bezoldiging",
		"bestuurdersaansprakelijkheid", "onbehoorlijk bestuur",
		"kennelijk onbehoorlijk bestuur", "doeloverschrijding",
		"vertegenwoordigingsbevoegdheid", "volstorting",
		"kapitaalbescherming", "uitkeringstoets", "balanstest",
		"jaarrekening", "jaarverslag", "publicatieplicht",
		"accountantsverklaring", "deponering", "fusie", "juridische fusie",
		"bedrijfsfusie", "aandelenfusie", "splitsing", "afsplitsing",
		"omzetting", "ontbinding rechtspersoon", "turboliquidatie",
		"faillissement", "surseance van betaling", "boedel",
		"faillissementsboedel", "verificatievergadering",
		"preferente schuldeiser", "concurrente schuldeiser", "separatist",
		"actio pauliana", "doorstart", "bestuursverbod", "enqueteprocedure",
		"wanbeleid", "uitkoopprocedure", "geschillenregeling", "uittreding",
		"uitstoting", "structuurvennootschap", "concern",
		"moedermaatschappij", "dochtermaatschappij", "joint venture",
		"aandeelhoudersovereenkomst", "due diligence",
		"overnameovereenkomst",
	},
}
