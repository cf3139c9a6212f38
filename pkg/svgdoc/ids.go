package svgdoc

import (
	"fmt"
	"sort"

	petname "github.com/dustinkirkland/golang-petname"
	log "github.com/sirupsen/logrus"

	"github.com/jeff-blank/trackmap/pkg/svgattr"
)

func (d *Document) idCounts() map[string]int {
	counts := make(map[string]int)
	d.node.each(func(n *Node) bool {
		if id := n.ID(); id != "" {
			counts[id]++
		}
		return true
	})
	return counts
}

// DuplicateIDs returns every id used more than once, with its count.
func (d *Document) DuplicateIDs() map[string]int {
	dups := make(map[string]int)
	for id, n := range d.idCounts() {
		if n > 1 {
			dups[id] = n
		}
	}
	return dups
}

// uniqueID returns base, or base followed by the lowest free counter, that
// no element in the document uses.
func (d *Document) uniqueID(base string) string {
	used := d.idCounts()
	if used[base] == 0 {
		return base
	}
	for i := 2; ; i++ {
		id := fmt.Sprintf("%s-%d", base, i)
		if used[id] == 0 {
			return id
		}
	}
}

// AssignIDs gives every line, polyline, rect and path without an id a
// readable generated one, prefix-adjective-name-N. It returns how many ids
// were added.
func (d *Document) AssignIDs(prefix string) int {
	if prefix == "" {
		prefix = "gen"
	}

	dups := d.DuplicateIDs()
	ids := make([]string, 0, len(dups))
	for id := range dups {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		log.Warnf("id '%s' is used %d times", id, dups[id])
	}

	used := d.idCounts()
	added, seq := 0, 0
	d.node.each(func(n *Node) bool {
		if !svgattr.IsShape(n.TagName()) || n.ID() != "" {
			return true
		}
		var id string
		for id == "" || used[id] > 0 {
			seq++
			id = fmt.Sprintf("%s-%s-%s-%d", prefix, petname.Adjective(), petname.Name(), seq)
		}
		used[id]++
		n.SetAttribute(svgattr.ID, id)
		log.Debugf("assigned id '%s' to <%s>", id, n.TagName())
		added++
		return true
	})
	return added
}
