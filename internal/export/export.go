// Package export renders every site and locale to static HTML files.
package export

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	g "maragu.dev/gomponents"

	"finitefield.org/landing-web/internal/content"
	"finitefield.org/landing-web/internal/i18n"
	"finitefield.org/landing-web/internal/lang"
	"finitefield.org/landing-web/internal/overlay"
	"finitefield.org/landing-web/internal/views"
)

const staticDir = "static"

// Options controls an export run.
type Options struct {
	Dir     string
	Catalog *i18n.Catalog
	// Static is copied next to every site's locale directories.
	Static      fs.FS
	Year        int
	Concurrency int
	Logger      *zap.Logger
}

// Result lists the written files relative to Options.Dir.
type Result struct {
	Files []string
}

// pageFiles maps each exported file to the overlay it renders open.
var pageFiles = []struct {
	name    string
	overlay string
}{
	{"index.html", ""},
	{"project.html", overlay.KindProject.String()},
	{"chat.html", overlay.KindChat.String()},
}

// Run writes <Dir>/<site>/<code>/{index,project,chat}.html for both locales
// of every site, the site's static assets and a redirect at <Dir>/<site>/.
func Run(ctx context.Context, sites []*content.Site, opts Options) (Result, error) {
	if opts.Dir == "" {
		return Result{}, fmt.Errorf("export: output directory is required")
	}
	if opts.Catalog == nil {
		return Result{}, fmt.Errorf("export: catalog is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	limit := opts.Concurrency
	if limit <= 0 {
		limit = runtime.NumCPU()
	}

	var (
		mu    sync.Mutex
		files []string
	)
	record := func(rel string) {
		mu.Lock()
		files = append(files, rel)
		mu.Unlock()
	}

	grp, ctx := errgroup.WithContext(ctx)
	grp.SetLimit(limit)
	for _, site := range sites {
		pair := site.Pair()
		for _, l := range []content.Locale{content.Primary, content.Secondary} {
			for _, pf := range pageFiles {
				grp.Go(func() error {
					if err := ctx.Err(); err != nil {
						return err
					}
					rel := filepath.Join(site.ID(), pair.Code(l), pf.name)
					data := pageData(site, l, pf.overlay, opts)
					if err := writeNode(filepath.Join(opts.Dir, rel), views.Page(data)); err != nil {
						return fmt.Errorf("export %s: %w", rel, err)
					}
					record(rel)
					return nil
				})
			}
		}
		grp.Go(func() error {
			rel := filepath.Join(site.ID(), "index.html")
			target := pair.Code(content.Primary) + "/index.html"
			if err := writeNode(filepath.Join(opts.Dir, rel), views.Redirect(target)); err != nil {
				return fmt.Errorf("export %s: %w", rel, err)
			}
			record(rel)
			return nil
		})
		if opts.Static != nil {
			grp.Go(func() error {
				copied, err := copyTree(opts.Static, filepath.Join(opts.Dir, site.ID(), staticDir))
				if err != nil {
					return fmt.Errorf("export %s static: %w", site.ID(), err)
				}
				for _, name := range copied {
					record(filepath.Join(site.ID(), staticDir, name))
				}
				return nil
			})
		}
	}
	if err := grp.Wait(); err != nil {
		return Result{}, err
	}

	sort.Strings(files)
	logger.Info("export finished", zap.String("dir", opts.Dir), zap.Int("files", len(files)), zap.Int("sites", len(sites)))
	return Result{Files: files}, nil
}

func pageData(site *content.Site, l content.Locale, open string, opts Options) views.PageData {
	lc := lang.New(site.Pair()).With(l)
	data := views.NewPageData(site, lc, opts.Catalog)
	data.Links = views.StaticLinks(lc.OtherCode())
	data.AssetBase = "../" + staticDir + "/"
	data.Host = overlay.NewPageHost(open)
	if opts.Year > 0 {
		data.Year = opts.Year
	}
	return data
}

func writeNode(path string, n g.Node) error {
	var buf bytes.Buffer
	if err := n.Render(&buf); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

func copyTree(src fs.FS, dst string) ([]string, error) {
	var copied []string
	err := fs.WalkDir(src, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(dst, filepath.FromSlash(path))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		if err := copyFile(src, path, target); err != nil {
			return err
		}
		copied = append(copied, filepath.FromSlash(path))
		return nil
	})
	return copied, err
}

func copyFile(src fs.FS, name, target string) error {
	in, err := src.Open(name)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(target)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
