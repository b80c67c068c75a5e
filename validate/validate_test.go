package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/mmtf/errs"
	"github.com/arloliu/mmtf/structure"
)

func minimalValidStructure() *structure.Structure {
	return &structure.Structure{
		MmtfVersion:    "1.0",
		MmtfProducer:   "test",
		NumAtoms:       1,
		NumGroups:      1,
		NumChains:      1,
		NumModels:      1,
		NumBonds:       0,
		XCoordList:     []float32{1},
		YCoordList:     []float32{2},
		ZCoordList:     []float32{3},
		GroupIDList:    []int32{1},
		GroupTypeList:  []int32{0},
		GroupList:      []structure.GroupType{{AtomNameList: []string{"CA"}, ElementList: []string{"C"}, FormalChargeList: []int32{0}, GroupName: "ALA", SingleLetterCode: "A", ChemCompType: "L-PEPTIDE LINKING"}},
		ChainIDList:    []string{"A"},
		GroupsPerChain: []int{1},
		ChainsPerModel: []int{1},
	}
}

func TestCheckValidStructure(t *testing.T) {
	require.NoError(t, Check(minimalValidStructure()))
}

func TestCheckEmptyStructure(t *testing.T) {
	require.NoError(t, Check(&structure.Structure{}))
}

func TestCheckGroupsPerChainMismatch(t *testing.T) {
	s := minimalValidStructure()
	s.GroupsPerChain = []int{2}

	err := Check(s)
	require.Error(t, err)
	var inconsistent *errs.Inconsistent
	assert.ErrorAs(t, err, &inconsistent)
}

func TestCheckGroupTypeIndexOutOfRange(t *testing.T) {
	s := minimalValidStructure()
	s.GroupTypeList = []int32{5}

	err := Check(s)
	require.Error(t, err)
	var outOfRange *errs.IndexOutOfRange
	assert.ErrorAs(t, err, &outOfRange)
}

func TestCheckChainIDTooLong(t *testing.T) {
	s := minimalValidStructure()
	s.ChainIDList = []string{"TOOLONG"}

	err := Check(s)
	require.Error(t, err)
	var tooLong *errs.FieldTooLong
	assert.ErrorAs(t, err, &tooLong)
}

func TestCheckInvalidDate(t *testing.T) {
	s := minimalValidStructure()
	s.DepositionDate = "01-01-2020"

	err := Check(s)
	require.Error(t, err)
	var badDate *errs.InvalidDateFormat
	assert.ErrorAs(t, err, &badDate)
}

func TestCheckBondOrderInvalid(t *testing.T) {
	s := minimalValidStructure()
	s.NumBonds = 1
	s.BondAtomList = []int32{0, 0}
	s.BondOrderList = []int8{9}

	err := Check(s)
	require.Error(t, err)
}

func TestCheckBondAtomIndexOutOfRange(t *testing.T) {
	s := minimalValidStructure()
	s.NumBonds = 1
	s.BondAtomList = []int32{0, 5}
	s.BondOrderList = []int8{1}

	err := Check(s)
	require.Error(t, err)
	var outOfRange *errs.IndexOutOfRange
	assert.ErrorAs(t, err, &outOfRange)
}

func TestCheckSecStructOutOfRange(t *testing.T) {
	s := minimalValidStructure()
	s.SecStructList = []int8{8}

	err := Check(s)
	require.Error(t, err)
}

func TestCheckSequenceIndexOutOfRange(t *testing.T) {
	s := minimalValidStructure()
	s.EntityList = []structure.Entity{{ChainIndexList: []int32{0}, Sequence: "AC"}}
	s.SequenceIndexList = []int32{5}

	err := Check(s)
	require.Error(t, err)
}

func TestCheckSequenceIndexSentinelAllowed(t *testing.T) {
	s := minimalValidStructure()
	s.EntityList = []structure.Entity{{ChainIndexList: []int32{0}, Sequence: "AC"}}
	s.SequenceIndexList = []int32{-1}

	require.NoError(t, Check(s))
}
