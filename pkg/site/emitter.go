// Package site assembles the generated portfolio content into a static
// HTML/CSS/JS bundle.
package site

import (
	"bytes"
	"os"
	"path/filepath"
	"text/template"

	"github.com/nikogura/portfolio-forge/pkg/portfolio"
	"github.com/pkg/errors"
)

// pageData carries the substitution values for the page template.
type pageData struct {
	Name      string
	Bio       string
	Skills    string
	Projects  string
	Education string
	Interests string
	Contact   string
}

// Emit substitutes the section content into the page template and writes
// the portfolio markup, stylesheet and script into dir. All three writes
// are unconditional overwrites. Content is inserted verbatim: the projects
// and education fragments are already HTML and must not be re-escaped,
// which is why this uses text/template rather than html/template.
func Emit(dir, name string, content map[portfolio.Section]string) (err error) {
	err = os.MkdirAll(dir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create output directory: %s", dir)
		return err
	}

	var page string
	page, err = renderPage(name, content)
	if err != nil {
		return err
	}

	files := map[string]string{
		HTMLFilename: page,
		CSSFilename:  stylesheet,
		JSFilename:   interactionScript,
	}

	for filename, data := range files {
		path := filepath.Join(dir, filename)
		err = os.WriteFile(path, []byte(data), 0644)
		if err != nil {
			err = errors.Wrapf(err, "failed to write output file: %s", path)
			return err
		}
	}

	return err
}

// renderPage executes the page template with the section content.
func renderPage(name string, content map[portfolio.Section]string) (page string, err error) {
	tmpl, parseErr := template.New("portfolio").Parse(pageTemplate)
	if parseErr != nil {
		err = errors.Wrap(parseErr, "failed to parse page template")
		return page, err
	}

	data := pageData{
		Name:      name,
		Bio:       content[portfolio.SectionBio],
		Skills:    content[portfolio.SectionSkills],
		Projects:  content[portfolio.SectionProjects],
		Education: content[portfolio.SectionEducation],
		Interests: content[portfolio.SectionInterests],
		Contact:   content[portfolio.SectionContact],
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, data)
	if err != nil {
		err = errors.Wrap(err, "failed to render page template")
		return page, err
	}

	page = buf.String()
	return page, err
}
