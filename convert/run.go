package convert

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/ianaindex"

	"mwc/archive"
	"mwc/assembler"
	"mwc/config"
	"mwc/decode"
	"mwc/sink"
	"mwc/sink/trace"
	"mwc/state"
)

func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("convert")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}
	if src, err = filepath.Abs(src); err != nil {
		return err
	}

	dst := cmd.Args().Get(1)
	if len(dst) == 0 {
		if dst, err = os.Getwd(); err != nil {
			return fmt.Errorf("unable to get working directory: %w", err)
		}
	}
	if dst, err = filepath.Abs(dst); err != nil {
		return err
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	env.Format, err = config.ParseOutputFmt(cmd.String("to"))
	if err != nil {
		log.Warn("Unknown output format requested, switching to xhtml", zap.Error(err))
		env.Format = config.OutputFmtXhtml
	}
	env.NoDirs, env.Overwrite = cmd.Bool("nodirs"), cmd.Bool("overwrite")

	if err := env.LoadStyle(); err != nil {
		return err
	}

	// zip does not define file name encoding, old archives may need a code page
	cp := cmd.String("force-zip-cp")
	if len(cp) == 0 {
		cp = env.Cfg.Document.ArchiveNamesCharset
	}
	if len(cp) > 0 {
		env.CodePage, err = ianaindex.IANA.Encoding(cp)
		if err != nil || env.CodePage == nil {
			log.Warn("Unknown character set specification. Ignoring...", zap.String("charset", cp), zap.Error(err))
			env.CodePage = nil
		} else {
			n, _ := ianaindex.IANA.Name(env.CodePage)
			log.Debug("Converting all non UTF-8 file names in archives", zap.String("charset", n))
		}
	}

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst), zap.Stringer("format", env.Format))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return process(ctx, src, dst, log)
}

// process determines the input type (directory, archive with optional path
// inside, or single file) and converts every supported document found.
func process(ctx context.Context, src, dst string, log *zap.Logger) error {
	var head, tail string
	for head = src; len(head) != 0; head, tail = filepath.Split(head) {
		if err := ctx.Err(); err != nil {
			return err
		}

		head = strings.TrimSuffix(head, string(filepath.Separator))

		fi, err := os.Stat(head)
		if err != nil {
			// does not exist - probably path in archive
			continue
		}

		if fi.Mode().IsDir() {
			if len(tail) != 0 {
				// directory cannot have tail - it would be simple file
				return fmt.Errorf("input source was not found (%s) => (%s)", head, strings.TrimPrefix(src, head))
			}
			if err := processDir(ctx, head, dst, log); err != nil {
				return fmt.Errorf("unable to process directory: %w", err)
			}
			break
		}

		if !fi.Mode().IsRegular() {
			return fmt.Errorf("unexpected path mode for (%s) => (%s)", head, strings.TrimPrefix(src, head))
		}

		isArchive, err := archive.IsArchive(head)
		if err != nil {
			return fmt.Errorf("unable to check archive type: %w", err)
		}
		if isArchive {
			inner := filepath.ToSlash(strings.TrimPrefix(strings.TrimPrefix(src, head), string(filepath.Separator)))
			if err := processArchive(ctx, head, inner, "", dst, log); err != nil {
				return fmt.Errorf("unable to process archive: %w", err)
			}
			break
		}

		if len(tail) != 0 || !decode.IsSupported(head) {
			return fmt.Errorf("input was not recognized as supported document (%s)", head)
		}
		if err := processFile(ctx, head, filepath.Base(head), dst, fi.ModTime(), log); err != nil {
			log.Error("Unable to process file", zap.String("file", head), zap.Error(err))
		}
		break
	}
	if len(head) == 0 {
		return fmt.Errorf("input source was not found (%s)", src)
	}
	return nil
}

// processDir walks directory tree converting documents and documents in
// archives.
func processDir(ctx context.Context, dir, dst string, log *zap.Logger) (err error) {
	count := 0
	defer func() {
		if err == nil && count == 0 {
			log.Debug("Nothing to process", zap.String("dir", dir))
		}
	}()

	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err != nil {
			log.Warn("Skipping path", zap.String("path", path), zap.Error(err))
			return nil
		}
		if !info.Mode().IsRegular() {
			return nil
		}

		rel := strings.TrimPrefix(strings.TrimPrefix(path, dir), string(filepath.Separator))

		isArchive, err := archive.IsArchive(path)
		if err != nil {
			log.Warn("Skipping file", zap.String("file", path), zap.Error(err))
			return nil
		}
		if isArchive {
			if err := processArchive(ctx, path, "", filepath.Dir(rel), dst, log); err != nil {
				log.Error("Unable to process archive", zap.String("file", path), zap.Error(err))
			}
			return nil
		}

		if !decode.IsSupported(path) {
			log.Debug("Skipping file, not recognized as document or archive", zap.String("file", path))
			return nil
		}
		count++
		if err := processFile(ctx, path, rel, dst, info.ModTime(), log); err != nil {
			log.Error("Unable to process file", zap.String("file", path), zap.Error(err))
		}
		return nil
	})
}

// processArchive converts supported documents inside archive under pathIn.
// Outputs are placed under pathOut.
func processArchive(ctx context.Context, path, pathIn, pathOut, dst string, log *zap.Logger) (err error) {
	env := state.EnvFromContext(ctx)

	count := 0
	defer func() {
		if err == nil && count == 0 {
			log.Debug("Nothing to process", zap.String("archive", path))
		}
	}()

	return archive.Walk(ctx, path, pathIn, env.CodePage, func(e archive.Entry) error {
		if !decode.IsSupported(e.Name) {
			log.Debug("Skipping file, not recognized as document", zap.String("archive", e.Archive), zap.String("file", e.Name))
			return nil
		}
		count++

		r, err := e.Open()
		if err != nil {
			log.Error("Unable to process file in archive", zap.String("archive", e.Archive), zap.String("file", e.Name), zap.Error(err))
			return nil
		}
		defer r.Close()

		if err := processDocument(ctx, r, filepath.Join(pathOut, filepath.FromSlash(e.Name)), dst, e.File.Modified, log); err != nil {
			log.Error("Unable to process file in archive", zap.String("archive", e.Archive), zap.String("file", e.Name), zap.Error(err))
		}
		return nil
	})
}

func processFile(ctx context.Context, path, src, dst string, modTime time.Time, log *zap.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := state.EnvFromContext(ctx).Rpt.StoreCopy("sources/"+filepath.ToSlash(src), path); err != nil {
		log.Warn("Unable to store source in report", zap.String("file", path), zap.Error(err))
	}
	return processDocument(ctx, f, src, dst, modTime, log)
}

// processDocument converts single document. "src" is the source path
// relative to what was requested, always including the file name; it
// decides the producer and the output location under "dst".
func processDocument(ctx context.Context, r io.Reader, src, dst string, modTime time.Time, log *zap.Logger) (rerr error) {
	env := state.EnvFromContext(ctx)
	cfg := &env.Cfg.Document

	var written []string

	log.Info("Conversion starting", zap.String("from", src))
	defer func(start time.Time) {
		// one broken document must not stop the batch
		if r := recover(); r != nil {
			log.Error("Conversion ended with panic",
				zap.Any("panic", r), zap.Duration("elapsed", time.Since(start)), zap.ByteString("stack", debug.Stack()))
			rerr = fmt.Errorf("conversion panic: %v", r)
		} else if rerr == nil {
			log.Info("Conversion completed", zap.Duration("elapsed", time.Since(start)), zap.Strings("to", written))
		}
	}(time.Now())

	p, err := producerFor(src, cfg, log)
	if err != nil {
		return err
	}

	out := newOutput(env.Format, env, log)
	var (
		target assembler.Sink = out
		rec    *trace.Recorder
	)
	if env.Rpt != nil {
		if t, ok := out.(*traceOutput); ok {
			rec = t.Recorder
		} else {
			rec = trace.New()
			target = sink.Tee(out, rec)
		}
	}

	meta := metadata(src, modTime, cfg, log)
	a, err := assembler.New(p.Flavor(), target, pageTemplates(&cfg.Page), log, assemblerOptions(p, meta, cfg)...)
	if err != nil {
		return fmt.Errorf("unable to prepare assembler: %w", err)
	}
	derr := p.Decode(ctx, r, a)
	aerr := a.EndDocument()

	if rec != nil {
		env.Rpt.StoreData("trace/"+filepath.ToSlash(src)+".txt", []byte(rec.Dump()))
		if err := rec.Validate(); err != nil {
			log.Warn("Event stream is not well formed", zap.String("from", src), zap.Error(err))
		}
	}
	if derr != nil {
		return fmt.Errorf("unable to decode %s: %w", src, derr)
	}
	if aerr != nil {
		return fmt.Errorf("unable to assemble %s: %w", src, aerr)
	}

	if written, err = out.save(buildOutputBase(src, dst, env), env.Overwrite); err != nil {
		return fmt.Errorf("unable to save output: %w", err)
	}
	for _, name := range written {
		log.Debug("Output written", zap.String("file", name))
		env.Rpt.Store("result/"+filepath.ToSlash(src)+"/"+filepath.Base(name), name)
	}
	return nil
}
