package report

import (
	"context"
	"fmt"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
	"github.com/gomutex/godocx/wml/ctypes"
	"github.com/nguyentantai21042004/ytresumen/internal/logger"
)

// dateLayout renders the run date the way Spanish readers expect
const dateLayout = "02/01/2006 15:04"

// Numbered items keep their own number and hang it in the left margin (twips)
var (
	numberedIndent  = 720
	numberedHanging = uint64(360)
)

type implDocx struct {
	logger logger.Logger
}

// NewDocx creates a Writer producing Word documents
func NewDocx(log logger.Logger) Writer {
	return &implDocx{logger: log}
}

func (w *implDocx) Write(ctx context.Context, header Header, summary, outputPath string) error {
	doc, err := render(header, summary)
	if err != nil {
		return err
	}
	if err := doc.SaveTo(outputPath); err != nil {
		return fmt.Errorf("save docx: %w", err)
	}

	w.logger.Debug(ctx, "Docx written: %s", outputPath)
	return nil
}

// render builds the document: title, source and date lines, then the summary body
func render(header Header, summary string) (*docx.RootDoc, error) {
	doc, err := godocx.NewDocument()
	if err != nil {
		return nil, fmt.Errorf("create docx: %w", err)
	}

	if _, err := doc.AddHeading(header.Title, 0); err != nil {
		return nil, fmt.Errorf("add title: %w", err)
	}
	if header.Source != "" {
		addSpans(doc.AddEmptyParagraph(), []span{{text: "Fuente: ", bold: true}, {text: header.Source}})
	}
	if !header.Date.IsZero() {
		addSpans(doc.AddEmptyParagraph(), []span{{text: "Fecha: ", bold: true}, {text: header.Date.Format(dateLayout)}})
	}

	for _, b := range parseBlocks(summary) {
		switch b.kind {
		case blockHeading:
			if _, err := doc.AddHeading(plainText(b.text), uint(b.level)); err != nil {
				return nil, fmt.Errorf("add heading: %w", err)
			}
		case blockBullet:
			p := doc.AddEmptyParagraph()
			p.Style("ListBullet")
			addSpans(p, inlineSpans(b.text))
		case blockNumbered:
			p := doc.AddEmptyParagraph()
			p.Style("ListParagraph")
			p.Indent(&ctypes.Indent{Left: &numberedIndent, Hanging: &numberedHanging})
			addSpans(p, append([]span{{text: b.number + ". "}}, inlineSpans(b.text)...))
		default:
			addSpans(doc.AddEmptyParagraph(), inlineSpans(b.text))
		}
	}

	return doc, nil
}

func addSpans(p *docx.Paragraph, spans []span) {
	for _, s := range spans {
		run := p.AddText(s.text)
		if s.bold {
			run.Bold(true)
		}
	}
}
