package render

import (
	"fmt"
	"sort"
	"strings"
)

// NavNode is one node of the sidebar navigation tree.
type NavNode struct {
	Name     string
	Title    string
	Path     string // files: relative markdown path; dirs: directory path
	IsDir    bool
	Children []*NavNode
}

// BuildNav constructs the sidebar tree from relative markdown paths.
// titleMap maps a relative path to its display title.
func BuildNav(paths []string, titleMap map[string]string) *NavNode {
	root := &NavNode{Name: "", IsDir: true}

	for _, p := range paths {
		parts := strings.Split(p, "/")
		current := root
		for i, part := range parts {
			isLast := i == len(parts)-1
			var next *NavNode
			for _, child := range current.Children {
				if child.Name == part {
					next = child
					break
				}
			}
			if next == nil {
				next = &NavNode{Name: part, IsDir: !isLast}
				if isLast {
					next.Path = p
					next.Title = titleMap[p]
				} else {
					next.Path = strings.Join(parts[:i+1], "/")
					next.Title = formatName(part)
				}
				current.Children = append(current.Children, next)
			}
			current = next
		}
	}

	sortNav(root)
	return root
}

// sortNav orders children directories first, then files, alphabetically.
func sortNav(node *NavNode) {
	sort.Slice(node.Children, func(i, j int) bool {
		if node.Children[i].IsDir != node.Children[j].IsDir {
			return node.Children[i].IsDir
		}
		return node.Children[i].Name < node.Children[j].Name
	})
	for _, child := range node.Children {
		if child.IsDir {
			sortNav(child)
		}
	}
}

// ToHTML renders the tree as nested lists for the sidebar. activePath is
// the page being rendered; basePath is the relative prefix back to the
// snapshot root.
func (t *NavNode) ToHTML(activePath, basePath string) string {
	var b strings.Builder
	renderNav(&b, t, activePath, basePath)
	return b.String()
}

func renderNav(b *strings.Builder, node *NavNode, activePath, basePath string) {
	if len(node.Children) == 0 {
		return
	}
	b.WriteString("<ul>\n")
	for _, child := range node.Children {
		if child.IsDir {
			fmt.Fprintf(b, `<li class="dir"><span class="dir-label">%s</span>`+"\n", child.Title)
			renderNav(b, child, activePath, basePath)
			b.WriteString("</li>\n")
			continue
		}
		label := child.Title
		if label == "" {
			label = formatName(strings.TrimSuffix(child.Name, ".md"))
		}
		active := ""
		if child.Path == activePath {
			active = ` class="active"`
		}
		fmt.Fprintf(b, `<li class="file"><a href="%s"%s>%s</a></li>`+"\n",
			basePath+mdPathToHTML(child.Path), active, label)
	}
	b.WriteString("</ul>\n")
}

// formatName turns a file or directory slug into a display name.
func formatName(name string) string {
	words := strings.FieldsFunc(name, func(c rune) bool {
		return c == '-' || c == '_'
	})
	for i, w := range words {
		if len(w) > 0 {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
