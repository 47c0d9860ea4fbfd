package state

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"mwc/css"
)

func newLocalEnv() *LocalEnv {
	return &LocalEnv{
		start: time.Now(),
	}
}

// LoadStyle reads the stylesheet configured for xhtml output, if any.
func (e *LocalEnv) LoadStyle() error {
	if e.Cfg == nil || len(e.Cfg.Document.XHTML.StylesheetPath) == 0 {
		return nil
	}
	data, err := os.ReadFile(e.Cfg.Document.XHTML.StylesheetPath)
	if err != nil {
		return fmt.Errorf("unable to read stylesheet: %w", err)
	}
	if e.Log != nil {
		sheet := css.NewParser(e.Log).Parse(data)
		if len(sheet.Warnings) > 0 {
			e.Log.Warn("Stylesheet has unsupported constructs",
				zap.String("path", e.Cfg.Document.XHTML.StylesheetPath), zap.Strings("warnings", sheet.Warnings))
		}
	}
	e.Style = data
	e.Rpt.StoreData("config/stylesheet.css", data)
	return nil
}
