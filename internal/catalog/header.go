package catalog

import (
	"bufio"
	"bytes"
	"strings"

	"git.home.luguber.info/inful/doccatalog/internal/logfields"
	"git.home.luguber.info/inful/doccatalog/internal/resource"
)

// PageAliasesAttribute names the header attribute listing a page's former addresses.
const PageAliasesAttribute = "page-aliases"

// Header is the document header of a page source.
type Header struct {
	Title      string
	Attributes map[string]string
}

// ReadHeader reads the title line and attribute entries at the top of an AsciiDoc source. Up to two
// lines directly after the title (author and revision) are skipped. The header ends at the first
// blank line after content, or at any other line.
func ReadHeader(contents []byte) Header {
	h := Header{Attributes: map[string]string{}}
	sc := bufio.NewScanner(bytes.NewReader(contents))
	started := false
	implicit := 0
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), " \t\r")
		switch {
		case line == "":
			if started {
				return h
			}
			continue
		case strings.HasPrefix(line, "//"):
			continue
		case !started && strings.HasPrefix(line, "= "):
			h.Title = strings.TrimSpace(line[2:])
			implicit = 2
		case strings.HasPrefix(line, ":"):
			implicit = 0
			end := strings.Index(line[1:], ":")
			if end < 1 {
				return h
			}
			h.Attributes[line[1:end+1]] = strings.TrimSpace(line[end+2:])
		case implicit > 0:
			implicit--
		default:
			return h
		}
		started = true
	}
	return h
}

// RegisterPageAliases registers an alias of page for every address listed in its page-aliases
// header attribute. The page title is filled from the header when unset.
func (c *Catalog) RegisterPageAliases(page *File) ([]*File, error) {
	if page.ID.Family != resource.FamilyPage || len(page.Contents) == 0 {
		return nil, nil
	}
	h := ReadHeader(page.Contents)
	if page.Title == "" {
		page.Title = h.Title
	}
	var aliases []*File
	for _, address := range strings.Split(h.Attributes[PageAliasesAttribute], ",") {
		address = strings.TrimSpace(address)
		if address == "" {
			continue
		}
		alias, err := c.RegisterPageAlias(address, page)
		if err != nil {
			return aliases, err
		}
		aliases = append(aliases, alias)
	}
	if len(aliases) > 0 {
		c.logger.Debug("Registered page aliases", logfields.ID(page.ID.Key()), logfields.Count(len(aliases)))
	}
	return aliases, nil
}
