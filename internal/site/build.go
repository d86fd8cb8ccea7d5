// Package site exports the portfolio as static files for hosting under the
// production base path.
package site

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/niranjandahal/portfolio/internal/assets"
	"github.com/niranjandahal/portfolio/internal/content"
	"github.com/niranjandahal/portfolio/internal/page"
	"github.com/niranjandahal/portfolio/internal/web"
)

type BuildOptions struct {
	Content   *content.Content
	BasePath  string
	OutputDir string
	PublicDir string
	Logger    *zap.Logger
}

// ErrUnsafeOutput is returned when removing the output directory would take
// the working directory or the public files with it.
var ErrUnsafeOutput = errors.New("refusing to replace output directory")

// checkOutputDir rejects an output directory that contains the working
// directory (this covers "." and "/") or the public directory.
func checkOutputDir(out, publicDir string) error {
	abs, err := filepath.Abs(out)
	if err != nil {
		return fmt.Errorf("failed to resolve output directory '%s': %w", out, err)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}
	if within(cwd, abs) {
		return fmt.Errorf("%w '%s': it contains the working directory", ErrUnsafeOutput, out)
	}
	if publicDir != "" {
		pub, err := filepath.Abs(publicDir)
		if err != nil {
			return fmt.Errorf("failed to resolve public directory '%s': %w", publicDir, err)
		}
		if within(pub, abs) {
			return fmt.Errorf("%w '%s': it contains the public directory", ErrUnsafeOutput, out)
		}
	}
	return nil
}

// within reports whether path is dir or lies below it.
func within(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// Build renders index.html in production mode into OutputDir and copies the
// runtime assets and the public directory next to it. OutputDir is replaced.
func Build(opts BuildOptions) error {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	out := opts.OutputDir
	if out == "" {
		return fmt.Errorf("output directory not set")
	}

	if err := checkOutputDir(out, opts.PublicDir); err != nil {
		return err
	}
	if err := os.RemoveAll(out); err != nil {
		return fmt.Errorf("failed to remove output directory '%s': %w", out, err)
	}
	if err := os.MkdirAll(out, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create output directory '%s': %w", out, err)
	}

	if opts.PublicDir != "" {
		if _, err := os.Stat(opts.PublicDir); err == nil {
			log.Info("Copying public files", zap.String("from", opts.PublicDir))
			if err := copyDirContents(opts.PublicDir, out); err != nil {
				return fmt.Errorf("failed to copy public files: %w", err)
			}
		} else {
			log.Warn("Public directory not found, skipping", zap.String("dir", opts.PublicDir))
		}
	}

	if err := copyFS(web.Static(), filepath.Join(out, "static")); err != nil {
		return fmt.Errorf("failed to copy static assets: %w", err)
	}

	tmpl, err := web.Templates()
	if err != nil {
		return err
	}
	p := page.New(opts.Content, page.Options{Assets: assets.New(true, opts.BasePath)})
	v := p.View()
	v.Static = true

	indexPath := filepath.Join(out, "index.html")
	f, err := os.Create(indexPath)
	if err != nil {
		return fmt.Errorf("failed to create homepage file '%s': %w", indexPath, err)
	}
	defer f.Close()
	if err := web.RenderPage(f, tmpl, v); err != nil {
		return fmt.Errorf("failed to render homepage: %w", err)
	}
	log.Info("Build completed", zap.String("output", out), zap.String("base", v.Root))
	return f.Close()
}

// copyDirContents recursively copies contents from src to dst.
func copyDirContents(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		relPath, err := filepath.Rel(src, path)
		if err != nil {
			return fmt.Errorf("failed to get relative path for %s: %w", path, err)
		}
		dstPath := filepath.Join(dst, relPath)

		if d.IsDir() {
			if err := os.MkdirAll(dstPath, os.ModePerm); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", dstPath, err)
			}
			return nil
		}
		in, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open source file %s: %w", path, err)
		}
		defer in.Close()
		return writeFile(dstPath, in)
	})
}

// copyFS writes every file of fsys under dst.
func copyFS(fsys fs.FS, dst string) error {
	return fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		dstPath := filepath.Join(dst, filepath.FromSlash(path))
		if d.IsDir() {
			return os.MkdirAll(dstPath, os.ModePerm)
		}
		in, err := fsys.Open(path)
		if err != nil {
			return err
		}
		defer in.Close()
		return writeFile(dstPath, in)
	})
}

func writeFile(dstFile string, r io.Reader) error {
	if err := os.MkdirAll(filepath.Dir(dstFile), os.ModePerm); err != nil {
		return fmt.Errorf("failed to create destination directory for %s: %w", dstFile, err)
	}
	out, err := os.Create(dstFile)
	if err != nil {
		return fmt.Errorf("failed to create destination file %s: %w", dstFile, err)
	}
	if _, err := io.Copy(out, r); err != nil {
		out.Close()
		return fmt.Errorf("failed to copy data to %s: %w", dstFile, err)
	}
	return out.Close()
}
