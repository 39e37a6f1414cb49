package bar

import "strings"

const (
	// maxPathSegments is how many trailing path segments survive before
	// the interior collapses into the ellipsis marker.
	maxPathSegments = 3

	ellipsisMarker = ".."
)

// workingDir is the left widget: the active pane's working directory,
// compressed until it fits. The home directory prefix becomes "~", paths
// deeper than maxPathSegments collapse their interior into one marker,
// and leading segments after the fixed head drop one at a time until the
// joined path fits. A path that cannot be shortened to fit is hidden.
func (b *Bar) workingDir(maxWidth int, tab *Tab) (string, bool) {
	if tab == nil {
		return "", false
	}
	wd := b.accessor.ActiveWd(tab.ID)
	if wd == "" {
		return "", false
	}

	parts := pathSegments(abbreviateHome(wd, b.home))
	head := 1
	if len(parts) > maxPathSegments {
		tail := parts[len(parts)-maxPathSegments:]
		parts = append([]string{parts[0], ellipsisMarker}, tail...)
		head = 2
	}

	for drop := head; drop != len(parts); drop++ {
		joined := joinSegments(append(parts[:head:head], parts[drop:]...))
		if displayWidth(joined) <= maxWidth {
			return joined, true
		}
	}

	// Last resort: the final directory name alone.
	if last := parts[len(parts)-1]; displayWidth(last) <= maxWidth {
		return last, true
	}
	return "", false
}

// clock is the right widget: the current local time as HH:MM. It is the
// one provider that is not pure; layout and draw run within the same tick.
func (b *Bar) clock(maxWidth int, _ *Tab) (string, bool) {
	if maxWidth < 5 {
		return "", false
	}
	return b.now().Format("15:04"), true
}

// tabLabel is the center widget: a user-chosen label when the title is
// marked with '#', otherwise the active pane's executable name. A label
// with no room drops to icon-only; truncation is the strategist's call,
// never the provider's.
func (b *Bar) tabLabel(maxWidth int, tab *Tab) (string, bool) {
	if tab == nil {
		return "", false
	}
	var text string
	if strings.HasPrefix(tab.Title, "#") {
		text = tab.Title[1:]
	} else {
		text = b.accessor.ActiveExe(tab.ID)
	}
	if displayWidth(text) >= maxWidth {
		return "", true
	}
	return text, true
}

// session is the right widget: the session name, "none" when unset. When
// the full name does not fit it degrades to the first three characters,
// and below three columns it hides rather than show a fragment.
func (b *Bar) session(maxWidth int, tab *Tab) (string, bool) {
	var text string
	if tab != nil {
		text = tab.Session
	}
	if text == "" {
		text = "none"
	}
	if displayWidth(text) <= maxWidth {
		return text, true
	}
	if maxWidth >= 3 {
		return truncate(text, 3), true
	}
	return "", false
}

func abbreviateHome(path, home string) string {
	home = strings.TrimSuffix(home, "/")
	if home == "" {
		return path
	}
	if path == home {
		return "~"
	}
	if strings.HasPrefix(path, home+"/") {
		return "~" + strings.TrimPrefix(path, home)
	}
	return path
}

func pathSegments(p string) []string {
	if p == "/" {
		return []string{"/"}
	}
	if strings.HasPrefix(p, "/") {
		return append([]string{"/"}, strings.Split(strings.TrimPrefix(p, "/"), "/")...)
	}
	return strings.Split(p, "/")
}

func joinSegments(parts []string) string {
	if parts[0] == "/" {
		return "/" + strings.Join(parts[1:], "/")
	}
	return strings.Join(parts, "/")
}
