package badge

import (
	"github.com/go-text/typesetting/di"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/bidi"
)

// rtlScripts lists the ISO 15924 codes of scripts written right to left.
var rtlScripts = map[string]bool{
	"Adlm": true, // Adlam
	"Arab": true, // Arabic
	"Armi": true, // Imperial Aramaic
	"Hebr": true, // Hebrew
	"Mand": true, // Mandaic
	"Mend": true, // Mende Kikakui
	"Nkoo": true, // N'Ko
	"Rohg": true, // Hanifi Rohingya
	"Samr": true, // Samaritan
	"Syrc": true, // Syriac
	"Thaa": true, // Thaana
	"Yezi": true, // Yezidi
}

// DirectionForLanguage returns the layout direction of a locale, using the
// script the tag is written in (explicit or inferred, e.g. "ar" implies Arab).
func DirectionForLanguage(tag language.Tag) LayoutDirection {
	script, conf := tag.Script()
	if conf == language.No {
		return LeftToRight
	}
	if rtlScripts[script.String()] {
		return RightToLeft
	}
	return LeftToRight
}

// DirectionForLocale parses a BCP 47 locale and returns its direction.
// Unparseable locales are left-to-right.
func DirectionForLocale(locale string) LayoutDirection {
	tag, err := language.Parse(locale)
	if err != nil {
		Logger().Debug("badge: unparseable locale, assuming ltr", "locale", locale, "err", err)
		return LeftToRight
	}
	return DirectionForLanguage(tag)
}

// DirectionForText returns the direction of the first strong character in
// s. Text with no strong character is left-to-right.
func DirectionForText(s string) LayoutDirection {
	for i := 0; i < len(s); {
		props, size := bidi.LookupString(s[i:])
		if size == 0 {
			break
		}
		switch props.Class() {
		case bidi.L:
			return LeftToRight
		case bidi.R, bidi.AL:
			return RightToLeft
		}
		i += size
	}
	return LeftToRight
}

// DirectionFromTypesetting converts a go-text shaping direction. Vertical
// directions have no leading side on the horizontal axis and map to
// left-to-right.
func DirectionFromTypesetting(d di.Direction) LayoutDirection {
	if d == di.DirectionRTL {
		return RightToLeft
	}
	return LeftToRight
}

// Typesetting returns the go-text shaping direction for d.
func (d LayoutDirection) Typesetting() di.Direction {
	if d == RightToLeft {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}
