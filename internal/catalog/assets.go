package catalog

import (
	"net/url"
	"path"
	"path/filepath"
	"strings"

	"github.com/mattn/go-runewidth"
)

// ResolveAssets returns a copy of the catalog whose relative image and icon
// references are rooted at base. base may be a URL ("https://cdn/x") or a
// directory. Absolute references, URLs, and glyph icons are left as-is.
// An empty base returns the receiver unchanged.
func (c *Catalog) ResolveAssets(base string) *Catalog {
	if c == nil || base == "" {
		return c
	}
	resolve := assetResolver(base)
	out := &Catalog{
		projects: make([]Project, len(c.projects)),
		byTitle:  c.byTitle,
	}
	for i, p := range c.projects {
		p.Images = cloneStrings(p.Images)
		for j, ref := range p.Images {
			p.Images[j] = resolve(ref)
		}
		p.Tech = append([]TechTag(nil), p.Tech...)
		for j, tag := range p.Tech {
			if tag.Icon != "" && !IsGlyph(tag.Icon) {
				p.Tech[j].Icon = resolve(tag.Icon)
			}
		}
		out.projects[i] = p
	}
	return out
}

// IsGlyph reports whether an icon is a short inline symbol rather than an
// asset reference.
func IsGlyph(icon string) bool {
	if icon == "" || strings.ContainsAny(icon, "./\\") {
		return false
	}
	return runewidth.StringWidth(icon) <= 2
}

func assetResolver(base string) func(string) string {
	if u, err := url.Parse(base); err == nil && u.Scheme != "" && u.Host != "" {
		return func(ref string) string {
			if isAbsoluteRef(ref) {
				return ref
			}
			return u.JoinPath(strings.TrimPrefix(path.Clean("/"+ref), "/")).String()
		}
	}
	return func(ref string) string {
		if isAbsoluteRef(ref) {
			return ref
		}
		return filepath.Join(base, filepath.FromSlash(ref))
	}
}

func isAbsoluteRef(ref string) bool {
	if filepath.IsAbs(ref) || strings.HasPrefix(ref, "/") {
		return true
	}
	u, err := url.Parse(ref)
	return err == nil && u.Scheme != ""
}

// AssetName returns the display name of an asset reference: the last path
// element of a URL or file path.
func AssetName(ref string) string {
	if u, err := url.Parse(ref); err == nil && u.Scheme != "" {
		ref = u.Path
	}
	name := path.Base(filepath.ToSlash(ref))
	if name == "." || name == "/" {
		return ref
	}
	return name
}
