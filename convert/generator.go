package convert

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"mwc/assembler"
	"mwc/config"
	"mwc/decode"
	"mwc/misc"
	"mwc/sink/csv"
	"mwc/sink/trace"
	"mwc/sink/xhtml"
	"mwc/state"
)

// output is a sink which knows how to save what it received.
type output interface {
	assembler.Sink
	// save writes the result next to base (output path without extension)
	// and returns names of written files.
	save(base string, overwrite bool) ([]string, error)
}

func newOutput(format config.OutputFmt, env *state.LocalEnv, log *zap.Logger) output {
	switch format {
	case config.OutputFmtCsv:
		return &csvOutput{Writer: csv.New(log), cfg: &env.Cfg.Document.CSV}
	case config.OutputFmtTrace:
		return &traceOutput{Recorder: trace.New()}
	default:
		return &xhtmlOutput{Writer: xhtml.New(xhtml.Options{
			Stylesheet:   string(env.Style),
			PageGeometry: env.Cfg.Document.XHTML.PageGeometry,
			Generator:    misc.GetAppName() + " " + misc.GetVersion(),
		}, log)}
	}
}

type xhtmlOutput struct {
	*xhtml.Writer
}

func (o *xhtmlOutput) save(base string, overwrite bool) ([]string, error) {
	var buf bytes.Buffer
	if _, err := o.WriteTo(&buf); err != nil {
		return nil, err
	}
	name := base + config.OutputFmtXhtml.Ext()
	if err := writeFile(name, buf.Bytes(), overwrite); err != nil {
		return nil, err
	}
	return []string{name}, nil
}

type traceOutput struct {
	*trace.Recorder
}

func (o *traceOutput) save(base string, overwrite bool) ([]string, error) {
	name := base + config.OutputFmtTrace.Ext()
	if err := writeFile(name, []byte(o.Dump()), overwrite); err != nil {
		return nil, err
	}
	return []string{name}, nil
}

type csvOutput struct {
	*csv.Writer
	cfg *config.CSVConfig
}

// save writes a single sheet as base.csv, several sheets as
// base<separator><sheet slug>.csv each.
func (o *csvOutput) save(base string, overwrite bool) ([]string, error) {
	tables := o.Tables()
	if len(tables) == 0 {
		return nil, errors.New("document has no sheets, nothing to write")
	}
	names := make([]string, 0, len(tables))
	for i, t := range tables {
		name := base + config.OutputFmtCsv.Ext()
		if len(tables) > 1 {
			name = base + o.cfg.SheetSeparator + t.FileName(i)
		}
		var buf bytes.Buffer
		if err := t.Write(&buf, o.cfg.CommaRune()); err != nil {
			return names, err
		}
		if err := writeFile(name, buf.Bytes(), overwrite); err != nil {
			return names, err
		}
		names = append(names, name)
	}
	return names, nil
}

func writeFile(name string, data []byte, overwrite bool) error {
	flags := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	if !overwrite {
		flags |= os.O_EXCL
	}
	if err := os.MkdirAll(filepath.Dir(name), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}
	f, err := os.OpenFile(name, flags, 0644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("output file already exists: %s", name)
		}
		return fmt.Errorf("unable to create output file: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("unable to write output file: %w", err)
	}
	return f.Close()
}

// pageTemplates returns page templates for a new document. A template covers
// one page and the assembler keeps reusing the last one.
func pageTemplates(cfg *config.PageConfig) []assembler.PageSpan {
	width, height := cfg.Width, cfg.Height
	if cfg.Landscape && width < height {
		width, height = height, width
	}
	return []assembler.PageSpan{{
		Width:        width,
		Height:       height,
		MarginTop:    cfg.MarginTop,
		MarginBottom: cfg.MarginBottom,
		MarginLeft:   cfg.MarginLeft,
		MarginRight:  cfg.MarginRight,
		Landscape:    cfg.Landscape,
		PageCount:    1,
	}}
}

// metadata describes the document converted from src.
func metadata(src string, modTime time.Time, cfg *config.DocumentConfig, log *zap.Logger) assembler.Metadata {
	meta := assembler.Metadata{
		Title:    strings.TrimSuffix(filepath.Base(src), filepath.Ext(src)),
		Author:   cfg.Metadata.Author,
		Language: cfg.Metadata.Language,
		Created:  modTime,
	}
	if id, err := uuid.NewV7(); err == nil {
		meta.ID = "urn:uuid:" + id.String()
	} else {
		log.Warn("Unable to generate document id, using random one", zap.Error(err))
		meta.ID = "urn:uuid:" + uuid.NewString()
	}
	return meta
}

// assemblerOptions translates configuration for producer p.
func assemblerOptions(p decode.Producer, meta assembler.Metadata, cfg *config.DocumentConfig) []func(*assembler.Options) {
	opts := []func(*assembler.Options){
		assembler.WithSmallPictureLimit(cfg.SmallPictureLimit),
		assembler.WithDefaultFont(assembler.Font{Name: cfg.DefaultFont.Name, Size: cfg.DefaultFont.Size}),
		assembler.WithMetadata(meta),
	}
	if t, ok := p.(*decode.Text); ok {
		if cm := t.Charmap(); cm != nil {
			opts = append(opts, assembler.WithCharmap(cm))
		}
	}
	return opts
}

// producerFor selects and configures the producer for src.
func producerFor(src string, cfg *config.DocumentConfig, log *zap.Logger) (decode.Producer, error) {
	p, err := decode.ForFile(src, cfg.SourceCharset)
	if err != nil {
		return nil, err
	}
	switch p := p.(type) {
	case *decode.CSV:
		p.Name = strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
		p.Comma = cfg.CSV.CommaRune()
		p.Header = cfg.CSV.Header
	case *decode.HTML:
		p.Log = log
	}
	return p, nil
}
