package runner

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/az-ai-labs/affixmorph/internal/config"
)

// Result is the output of one input word: its lemmas in stem mode, its
// surface forms in the expansion modes.
type Result struct {
	Word  string   `json:"word"  yaml:"word"`
	Forms []string `json:"forms" yaml:"forms"`
}

type resultWriter interface {
	write(Result) error
	flush() error
}

type textStyle int

const (
	styleStem   textStyle = iota // "word: lemma lemma"
	styleExpand                  // one "lemma:form" line per form
)

func newResultWriter(w io.Writer, format string, style textStyle) resultWriter {
	bw := bufio.NewWriter(w)
	switch format {
	case config.FormatJSON:
		return &jsonWriter{bw: bw, enc: json.NewEncoder(bw)}
	case config.FormatYAML:
		return &yamlWriter{bw: bw, enc: yaml.NewEncoder(bw)}
	default:
		return &textWriter{bw: bw, style: style}
	}
}

type textWriter struct {
	bw    *bufio.Writer
	style textStyle
}

func (w *textWriter) write(res Result) error {
	if w.style == styleExpand {
		for _, f := range res.Forms {
			if _, err := w.bw.WriteString(res.Word + Separator + f + "\n"); err != nil {
				return err
			}
		}
		return nil
	}

	var b strings.Builder
	b.WriteString(res.Word)
	b.WriteString(Separator)
	for _, f := range res.Forms {
		b.WriteString(" " + f)
	}
	b.WriteByte('\n')
	_, err := w.bw.WriteString(b.String())
	return err
}

func (w *textWriter) flush() error { return w.bw.Flush() }

// jsonWriter emits one JSON object per line.
type jsonWriter struct {
	bw  *bufio.Writer
	enc *json.Encoder
}

func (w *jsonWriter) write(res Result) error {
	if res.Forms == nil {
		res.Forms = []string{}
	}
	return w.enc.Encode(res)
}

func (w *jsonWriter) flush() error { return w.bw.Flush() }

// yamlWriter emits one YAML document per result.
type yamlWriter struct {
	bw  *bufio.Writer
	enc *yaml.Encoder
}

func (w *yamlWriter) write(res Result) error {
	if res.Forms == nil {
		res.Forms = []string{}
	}
	return w.enc.Encode(res)
}

func (w *yamlWriter) flush() error {
	if err := w.enc.Close(); err != nil {
		return err
	}
	return w.bw.Flush()
}

// WriteReport renders a round-trip report in the given format.
func WriteReport(w io.Writer, format string, rep *Report) error {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(rep); err != nil {
			return err
		}
		return enc.Close()
	}

	bw := bufio.NewWriter(w)
	for _, m := range rep.Mismatches {
		fmt.Fprintf(bw, "%s%s%s -> [%s]\n", m.Lemma, Separator, m.Form, strings.Join(m.Stems, " "))
	}
	fmt.Fprintf(bw, "pairs: %d\nlemmas: %d\nforms: %d\nfailures: %d\n",
		rep.Pairs, rep.Lemmas, rep.Forms, rep.Failures)
	return bw.Flush()
}
