package cli

import (
	"fmt"
	"io"

	"github.com/nguyentantai21042004/ytresumen/internal/language"
)

// PrintUsage writes the help text, including every language in table
func PrintUsage(w io.Writer, table language.Table) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  ytresumen [flags] <url>")
	fmt.Fprintln(w, "  ytresumen watch [flags] <inbox>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Downloads the audio of a video, transcribes it with Whisper and writes")
	fmt.Fprintln(w, "a summary to <output>/resumen.txt.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintf(w, "  -l, -language <code>   transcription language (default %q); %q detects it\n", language.Default, language.Auto)
	fmt.Fprintln(w, "  -o, -output <dir>      destination folder (default paths.output, ~/Downloads)")
	fmt.Fprintln(w, "      -docx              also write resumen.docx")
	fmt.Fprintf(w, "      -config <file>     configuration file (default %q)\n", defaultConfigPath)
	fmt.Fprintln(w, "      -fetcher <name>    audio downloader: ytdlp | youtube")
	fmt.Fprintln(w, "      -provider <name>   summary provider: groq | openai | gemini")
	fmt.Fprintln(w, "      -model <name>      summary model")
	fmt.Fprintln(w, "  -h, -help              show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Languages:")
	for _, code := range table.Codes() {
		fmt.Fprintf(w, "  %-5s %s\n", code, table.Name(code))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  ytresumen https://www.youtube.com/watch?v=dQw4w9WgXcQ")
	fmt.Fprintln(w, "  ytresumen -l en -o ./notes https://youtu.be/dQw4w9WgXcQ")
	fmt.Fprintln(w, "  ytresumen -language auto -docx https://youtu.be/dQw4w9WgXcQ")
	fmt.Fprintln(w, "  ytresumen watch ~/inbox")
}
