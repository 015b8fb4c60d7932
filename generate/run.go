// Package generate lays out a sample document and writes its pages as images.
package generate

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"pagelay/config"
	"pagelay/layout"
	"pagelay/numbering"
	"pagelay/paging"
	"pagelay/render"
	"pagelay/samples"
	"pagelay/state"
)

// DefaultSample is rendered when no sample was requested.
const DefaultSample = "kitchen-sink"

func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("generate").With(zap.Stringer("run", env.RunID))

	dst := cmd.Args().Get(0)
	if len(dst) == 0 {
		if dst, err = os.Getwd(); err != nil {
			return fmt.Errorf("unable to get working directory: %w", err)
		}
	}
	if dst, err = filepath.Abs(dst); err != nil {
		return err
	}
	if cmd.Args().Len() > 1 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	if to := cmd.String("to"); len(to) > 0 {
		format, err := config.ParseImageFmt(to)
		if err != nil {
			log.Warn("Unknown output format requested, using configured one", zap.Error(err), zap.Stringer("format", env.Cfg.Render.Format))
		} else {
			env.Cfg.Render.Format = format
		}
	}

	name := cmd.String("sample")
	if len(name) == 0 {
		name = DefaultSample
	}
	return Generate(ctx, env, name, dst, cmd.Bool("overwrite"))
}

// Generate renders sample document name into directory dst.
func Generate(ctx context.Context, env *state.LocalEnv, name, dst string, overwrite bool) (err error) {
	log := env.Log.Named("generate").With(zap.Stringer("run", env.RunID))
	start := time.Now()

	if env.Fonts == nil || env.Images == nil {
		if err := env.PrepareResources(); err != nil {
			return fmt.Errorf("unable to prepare resources: %w", err)
		}
	}
	doc, err := buildSample(ctx, env, name, log)
	if err != nil {
		return err
	}

	r, err := render.New(&env.Cfg.Render, log.Named("render"))
	if err != nil {
		return err
	}

	paginator := newPaginator(env, log)
	seq := paginator.Pages(ctx, doc.Content, doc.Size)
	if doc.Structure != nil {
		seq = paginator.Document(ctx, doc.Content, doc.Size, doc.Structure)
	}
	// all pages are needed before naming files, template may refer to number of pages
	pages, err := paging.Collect(seq)
	if err != nil {
		return fmt.Errorf("unable to paginate %s: %w", name, err)
	}

	for _, page := range pages {
		if env.Rpt != nil {
			env.Rpt.StoreData(fmt.Sprintf("layout/%s-%03d.txt", name, page.Index+1), []byte(layout.Dump(page.Layout)))
		}
		values := Values{
			Name:   name,
			Page:   page.Index,
			Pages:  len(pages),
			Format: env.Cfg.Render.Format.String(),
			RunID:  env.RunID.String(),
		}
		fname := buildOutputPath(dst, values, env)
		if err := writePage(r, page, fname, overwrite); err != nil {
			return err
		}
		if env.Rpt != nil {
			if err := env.Rpt.StoreCopy(reportName(dst, fname), fname); err != nil {
				log.Warn("Unable to store page in the report", zap.String("file", fname), zap.Error(err))
			}
		}
		log.Debug("Page written", zap.Int("page", page.Index), zap.String("file", fname))
	}

	log.Info("Document rendered",
		zap.String("sample", name),
		zap.Int("pages", len(pages)),
		zap.String("to", dst),
		zap.Duration("elapsed", time.Since(start)))
	return nil
}

func buildSample(ctx context.Context, env *state.LocalEnv, name string, log *zap.Logger) (*samples.Document, error) {
	style, err := samples.NewStyle(env.Fonts, env.Cfg.Fonts.Default, env.Cfg.Fonts.Size)
	if err != nil {
		return nil, err
	}
	styles := make([]numbering.Style, 0, len(env.Cfg.Document.Numbering))
	for _, n := range env.Cfg.Document.Numbering {
		s, err := numbering.ParseStyle(n)
		if err != nil {
			return nil, fmt.Errorf("bad section numbering: %w", err)
		}
		styles = append(styles, s)
	}

	doc, err := samples.Build(ctx, name, &samples.Resources{
		Fonts:     env.Fonts,
		Style:     style,
		Images:    env.Images,
		Paginator: newPaginator(env, log),
		Title:     env.Cfg.Document.Title,
		Numbering: styles,
		Vignette:  state.VignetteName("chapter-end"),
	})
	if err != nil {
		return nil, err
	}
	if doc.Size == (layout.Size{}) {
		w, h, err := env.Cfg.Page.Dimensions()
		if err != nil {
			return nil, fmt.Errorf("bad page configuration: %w", err)
		}
		doc.Size = layout.Size{Width: w, Height: h}
	}
	return doc, nil
}

func newPaginator(env *state.LocalEnv, log *zap.Logger) *paging.Paginator {
	return paging.New(
		paging.WithLogger(log.Named("paging")),
		paging.WithDebug(env.Cfg.Paging.Debug),
		paging.WithMaxPages(env.Cfg.Paging.MaxPages),
	)
}

// reportName places page under "pages/" keeping subdirectories created by
// the output name template.
func reportName(dst, fname string) string {
	rel, err := filepath.Rel(dst, fname)
	if err != nil || strings.HasPrefix(rel, "..") {
		rel = filepath.Base(fname)
	}
	return path.Join("pages", filepath.ToSlash(rel))
}

func writePage(r *render.Renderer, page *paging.Page, fname string, overwrite bool) (err error) {
	img, err := r.Page(page.Size, page.Layout)
	if err != nil {
		return fmt.Errorf("page %d: %w", page.Index, err)
	}

	if _, err := os.Stat(fname); err == nil {
		if !overwrite {
			return fmt.Errorf("output file already exists: %s", fname)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("unable to check output file: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(fname), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}

	out, err := os.Create(fname)
	if err != nil {
		return fmt.Errorf("unable to create output file: %w", err)
	}
	defer func() {
		if er := out.Close(); er != nil {
			err = multierr.Append(err, fmt.Errorf("unable to close output file: %w", er))
		}
	}()
	if err := r.Encode(out, img); err != nil {
		return fmt.Errorf("page %d: %w", page.Index, err)
	}
	return nil
}
