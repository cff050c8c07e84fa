// Package language holds the table of transcription languages accepted on the command line.
package language

import "sort"

// Auto requests automatic language detection.
const Auto = "auto"

// Default is the language used when none is given.
const Default = "es"

// Table maps a Whisper language code to its display name. Treat it as read-only.
type Table map[string]string

// Supported lists every language the Whisper base model can be asked for.
var Supported = Table{
	"af": "Afrikáans", "sq": "Albanés", "am": "Amárico", "ar": "Árabe", "hy": "Armenio", "as": "Asamés",
	"az": "Azerbaiyano", "bn": "Bengalí", "bs": "Bosnio", "bg": "Búlgaro", "ca": "Catalán", "zh": "Chino",
	"hr": "Croata", "cs": "Checo", "da": "Danés", "nl": "Neerlandés", "en": "Inglés", "eo": "Esperanto",
	"et": "Estonio", "fi": "Finés", "fr": "Francés", "gl": "Gallego", "ka": "Georgiano", "de": "Alemán",
	"el": "Griego", "gu": "Gujarati", "he": "Hebreo", "hi": "Hindi", "hu": "Húngaro", "is": "Islandés",
	"id": "Indonesio", "ga": "Irlandés", "it": "Italiano", "ja": "Japonés", "jv": "Javanés", "kn": "Canarés",
	"kk": "Kazajo", "km": "Jemer", "ko": "Coreano", "lo": "Lao", "lv": "Letón", "lt": "Lituano", "mk": "Macedonio",
	"ms": "Malayo", "ml": "Malayalam", "mt": "Maltés", "mr": "Maratí", "mn": "Mongol", "ne": "Nepalí",
	"no": "Noruego", "fa": "Persa", "pl": "Polaco", "pt": "Portugués", "pa": "Punyabí", "ro": "Rumano",
	"ru": "Ruso", "sr": "Serbio", "si": "Cingalés", "sk": "Eslovaco", "sl": "Esloveno", "es": "Español",
	"sw": "Swahili", "sv": "Sueco", "tl": "Tagalo", "ta": "Tamil", "te": "Telugu", "th": "Tailandés",
	"tr": "Turco", "uk": "Ucraniano", "ur": "Urdu", "uz": "Uzbeko", "vi": "Vietnamita", "cy": "Galés",
}

// Valid reports whether code is Auto or a key of t.
func (t Table) Valid(code string) bool {
	if code == Auto {
		return true
	}
	_, ok := t[code]
	return ok
}

// Name returns the display name for code.
func (t Table) Name(code string) string {
	if code == Auto {
		return "Detección automática"
	}
	if name, ok := t[code]; ok {
		return name
	}
	return "Desconocido"
}

// Codes returns every code of t, sorted, with Auto first.
func (t Table) Codes() []string {
	codes := make([]string, 0, len(t)+1)
	for code := range t {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return append([]string{Auto}, codes...)
}

// Hint converts a code into the language hint given to a recognizer; Auto becomes empty.
func Hint(code string) string {
	if code == Auto {
		return ""
	}
	return code
}
