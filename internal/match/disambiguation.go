package match

import (
	"regexp"

	"github.com/pdevries/ontoclass/internal/model"
)

// ContextRule is one step of a disambiguation rule: when the context
// pattern matches the definition, the boost goes to the target category.
// Rules are scanned in order; the first matching context wins.
type ContextRule struct {
	Pattern *regexp.Regexp
	Target  model.UFOCategory
}

type contextSpec struct {
	pattern string
	target  model.UFOCategory
}

// builtinDisambiguationSpecs maps overloaded Dutch legal terms to their
// ordered context rules. Example: "zaak" means a physical object in
// property law but a court case in procedural usage.
func builtinDisambiguationSpecs() map[string][]contextSpec {
	return map[string][]contextSpec{
		"zaak": {
			{`roerend|onroerend|voorwerp|eigendom|stoffelijk`, model.CategoryKind},
			{`rechter|procedure|geding|aanhangig|behandeld`, model.CategoryEvent},
		},
		"rechtszaak": {
			{`rechter|behandeld|procedure|aanhangig|geding`, model.CategoryEvent},
		},
		"huwelijk": {
			{`sluiten|voltrekking|voltrokken|ceremonie|aangaan`, model.CategoryEvent},
			{`band|verbintenis|echtgenoten|gehuwde`, model.CategoryRelator},
		},
		"uitspraak": {
			{`doen van|wordt gedaan|ter zitting`, model.CategoryEvent},
			{`schriftelijk|document|afschrift`, model.CategoryKind},
		},
		"vordering": {
			{`instellen|ingesteld|indienen`, model.CategoryEvent},
			{`aanspraak|recht om`, model.CategoryMode},
		},
		"beslag": {
			{`leggen|gelegd`, model.CategoryEvent},
			{`goederen|vermogen`, model.CategoryMode},
		},
		"levering": {
			{`overdracht|overgedragen|feitelijke handeling`, model.CategoryEvent},
		},
		"testament": {
			{`opmaken|opstellen|herroepen`, model.CategoryEvent},
			{`akte|document|geschrift`, model.CategoryKind},
		},
		"partij": {
			{`overeenkomst|contract|geding`, model.CategoryRoleMixin},
		},
	}
}
