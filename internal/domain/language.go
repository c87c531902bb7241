package domain

// PivotLanguage is the language the coach talks to the completion service in.
const PivotLanguage = "en"

// Language is a selectable UI/chat language.
type Language struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// Languages is the catalogue offered to users, in menu order.
var Languages = []Language{
	{Name: "English", Code: "en"},
	{Name: "Urdu", Code: "ur"},
	{Name: "Hindi", Code: "hi"},
	{Name: "Punjabi", Code: "pa"},
	{Name: "Spanish", Code: "es"},
	{Name: "French", Code: "fr"},
	{Name: "German", Code: "de"},
	{Name: "Italian", Code: "it"},
	{Name: "Arabic", Code: "ar"},
	{Name: "Chinese (Simplified)", Code: "zh-CN"},
	{Name: "Japanese", Code: "ja"},
	{Name: "Korean", Code: "ko"},
}

// ResolveLanguage returns code if it is in the catalogue, otherwise the pivot
// language.
func ResolveLanguage(code string) string {
	for _, l := range Languages {
		if l.Code == code {
			return code
		}
	}
	return PivotLanguage
}
