package embassy

import (
	"strconv"

	"golang.org/x/text/language"
)

// Translations maps a locale to a partial set of field overrides. A field
// present with a non-empty value replaces the base field whole for that
// locale; an empty string means "not translated" and the base field wins.
type Translations map[Locale]map[string]string

// Resolve returns the override for field in lang when one exists and is
// non-empty, otherwise base. An empty lang always yields base.
func (t Translations) Resolve(lang Locale, field, base string) string {
	if lang == "" || t == nil {
		return base
	}
	if v, ok := t[lang][field]; ok && v != "" {
		return v
	}
	return base
}

var (
	localeTags = []language.Tag{
		language.English,
		language.Romanian,
		language.Arabic,
	}
	localeMatcher = language.NewMatcher(localeTags)
)

// ParseLocale maps a lang query value onto the supported set. Unknown or
// empty values yield the empty Locale, which disables resolution.
func ParseLocale(s string) Locale {
	if s == "" {
		return ""
	}
	tag, err := language.Parse(s)
	if err != nil {
		return ""
	}
	_, idx, conf := localeMatcher.Match(tag)
	if conf < language.High {
		return ""
	}
	return SupportedLocales[idx]
}

// Localized returns a copy of the service with Name and Details resolved
// for lang. The stored entity is never mutated.
func (s ConsularService) Localized(lang Locale) ConsularService {
	if lang == "" || len(s.I18n[lang]) == 0 {
		return s
	}
	out := s
	out.Name = s.I18n.Resolve(lang, "name", s.Name)
	out.Details = s.I18n.Resolve(lang, "details", s.Details)
	return out
}

// Localized returns a copy of the news item with Title, Summary and Body
// resolved for lang.
func (n NewsItem) Localized(lang Locale) NewsItem {
	if lang == "" || len(n.I18n[lang]) == 0 {
		return n
	}
	out := n
	out.Title = n.I18n.Resolve(lang, "title", n.Title)
	out.Summary = n.I18n.Resolve(lang, "summary", n.Summary)
	out.Body = n.I18n.Resolve(lang, "body", n.Body)
	return out
}

// Localized returns a copy of the alert with Title and Message resolved
// for lang. Active and Level are language-agnostic.
func (a Alert) Localized(lang Locale) Alert {
	if lang == "" || len(a.I18n[lang]) == 0 {
		return a
	}
	out := a
	out.Title = a.I18n.Resolve(lang, "title", a.Title)
	out.Message = a.I18n.Resolve(lang, "message", a.Message)
	return out
}

// Localized returns a copy of the form document with Name and Description
// resolved for lang.
func (f FormDocument) Localized(lang Locale) FormDocument {
	if lang == "" || len(f.I18n[lang]) == 0 {
		return f
	}
	out := f
	out.Name = f.I18n.Resolve(lang, "name", f.Name)
	out.Description = f.I18n.Resolve(lang, "description", f.Description)
	return out
}

// Localized resolves the settings document field by field, including the
// caption of each promo slide (keyed "slide_caption_<index>").
func (s Settings) Localized(lang Locale) Settings {
	if lang == "" || len(s.I18n[lang]) == 0 {
		return s
	}
	out := s
	out.HeroTitle = s.I18n.Resolve(lang, "hero_title", s.HeroTitle)
	out.HeroSubtitle = s.I18n.Resolve(lang, "hero_subtitle", s.HeroSubtitle)
	out.StatusBar = s.I18n.Resolve(lang, "status_bar", s.StatusBar)
	out.Hours = s.I18n.Resolve(lang, "hours", s.Hours)
	out.Emergency = s.I18n.Resolve(lang, "emergency", s.Emergency)
	out.Address = s.I18n.Resolve(lang, "address", s.Address)

	if len(s.Slides) > 0 {
		slides := make([]PromoSlide, len(s.Slides))
		copy(slides, s.Slides)
		for i := range slides {
			key := slideCaptionKey(i)
			slides[i].Caption = s.I18n.Resolve(lang, key, slides[i].Caption)
		}
		out.Slides = slides
	}
	return out
}

// slideCaptionKey is the i18n field name for the caption of slide i.
func slideCaptionKey(i int) string {
	return "slide_caption_" + strconv.Itoa(i)
}
