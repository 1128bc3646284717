package locator

import "strings"

// ariaRoles is the WAI-ARIA role set accepted by Playwright role queries
var ariaRoles = map[string]struct{}{}

func init() {
	for _, r := range []string{
		"alert", "alertdialog", "application", "article", "banner", "blockquote",
		"button", "caption", "cell", "checkbox", "code", "columnheader", "combobox",
		"complementary", "contentinfo", "definition", "deletion", "dialog",
		"directory", "document", "emphasis", "feed", "figure", "form", "generic",
		"grid", "gridcell", "group", "heading", "img", "insertion", "link", "list",
		"listbox", "listitem", "log", "main", "marquee", "math", "meter", "menu",
		"menubar", "menuitem", "menuitemcheckbox", "menuitemradio", "navigation",
		"none", "note", "option", "paragraph", "presentation", "progressbar",
		"radio", "radiogroup", "region", "row", "rowgroup", "rowheader",
		"scrollbar", "search", "searchbox", "separator", "slider", "spinbutton",
		"status", "strong", "subscript", "superscript", "switch", "tab", "table",
		"tablist", "tabpanel", "term", "textbox", "time", "timer", "toolbar",
		"tooltip", "tree", "treegrid", "treeitem",
	} {
		ariaRoles[r] = struct{}{}
	}
}

// parseRole turns a configured role name (BUTTON, button, Button) into the
// lowercase ARIA role identifier
func parseRole(value string) (string, bool) {
	role := strings.ToLower(strings.TrimSpace(value))
	_, ok := ariaRoles[role]
	return role, ok
}
