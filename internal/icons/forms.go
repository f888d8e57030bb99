package icons

// formIcons maps the drug forms the extraction pipeline emits onto the
// fixed icon set. Forms without a dedicated drawing borrow the closest one.
var formIcons = map[string]string{
	"tablet":      "tablets",
	"capsule":     "capsules",
	"sachet":      "sachets",
	"powder":      "sachets",
	"gum":         "gum",
	"suppository": "inserts",
	"ointment":    "ointment",
	"cream":       "lotion",
	"gel":         "ointment",
	"lotion":      "lotion",
	"patch":       "patches",
	"syrup":       "syrup",
	"liquid":      "syrup",
	"solution":    "mouthwash",
	"mouthwash":   "mouthwash",
	"spray":       "sprays",
	"drops":       "drops",
	"injection":   "injections",
	"inhaler":     "inhalers",
}

// ForForm returns the icon key for a drug form, falling back to the tablets
// icon when the form is unrecognized.
func ForForm(form string) string {
	if key, ok := formIcons[CanonicalKey(form)]; ok {
		return key
	}
	return "tablets"
}
