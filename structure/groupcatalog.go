package structure

import (
	"fmt"
	"strings"

	"github.com/arloliu/mmtf/internal/hash"
)

// GroupCatalog de-duplicates GroupType templates by content when a caller
// is assembling a Structure programmatically: many residues of the same
// kind (water, alanine, ...) share an identical template, and the wire
// format only pays for it once.
type GroupCatalog struct {
	list    []GroupType
	byPrint map[uint64][]int // fingerprint -> candidate indices, collision-checked below
}

// NewGroupCatalog creates an empty catalog.
func NewGroupCatalog() *GroupCatalog {
	return &GroupCatalog{byPrint: make(map[uint64][]int)}
}

// Add returns the index of gt within the catalog, appending it only if no
// structurally identical template is already present.
func (c *GroupCatalog) Add(gt GroupType) int {
	fp := fingerprint(gt)
	for _, idx := range c.byPrint[fp] {
		if groupTypesEqual(c.list[idx], gt) {
			return idx
		}
	}

	idx := len(c.list)
	c.list = append(c.list, gt)
	c.byPrint[fp] = append(c.byPrint[fp], idx)

	return idx
}

// List returns the accumulated catalog in insertion order, suitable for
// Structure.GroupList.
func (c *GroupCatalog) List() []GroupType {
	return c.list
}

func fingerprint(gt GroupType) uint64 {
	var b strings.Builder

	b.WriteString(gt.GroupName)
	b.WriteByte(0)
	b.WriteString(gt.SingleLetterCode)
	b.WriteByte(0)
	b.WriteString(gt.ChemCompType)
	b.WriteByte(0)
	fmt.Fprint(&b, gt.AtomNameList, gt.ElementList, gt.FormalChargeList, gt.BondAtomList, gt.BondOrderList, gt.BondResonanceList)

	return hash.Fingerprint([]byte(b.String()))
}

func groupTypesEqual(a, b GroupType) bool {
	return a.GroupName == b.GroupName &&
		a.SingleLetterCode == b.SingleLetterCode &&
		a.ChemCompType == b.ChemCompType &&
		equalStrings(a.AtomNameList, b.AtomNameList) &&
		equalStrings(a.ElementList, b.ElementList) &&
		equalInt32(a.FormalChargeList, b.FormalChargeList) &&
		equalInt32(a.BondAtomList, b.BondAtomList) &&
		equalInt8(a.BondOrderList, b.BondOrderList) &&
		equalInt8(a.BondResonanceList, b.BondResonanceList)
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

func equalInt32(a, b []int32) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

func equalInt8(a, b []int8) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
