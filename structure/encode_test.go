package structure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/arloliu/mmtf/errs"
)

func minimalStructure() *Structure {
	return &Structure{
		MmtfVersion:   "1.0",
		MmtfProducer:  "test",
		NumAtoms:      1,
		NumGroups:     1,
		NumChains:     1,
		NumModels:     1,
		XCoordList:    []float32{1.5},
		YCoordList:    []float32{2.5},
		ZCoordList:    []float32{3.5},
		GroupIDList:   []int32{1},
		GroupTypeList: []int32{0},
		GroupList: []GroupType{{
			AtomNameList:     []string{"CA"},
			ElementList:      []string{"C"},
			FormalChargeList: []int32{0},
			GroupName:        "ALA",
			SingleLetterCode: "A",
			ChemCompType:     "L-PEPTIDE LINKING",
		}},
		ChainIDList:    []string{"A"},
		GroupsPerChain: []int{1},
		ChainsPerModel: []int{1},
	}
}

func TestEncodeDefaultOmission(t *testing.T) {
	data, err := Encode(minimalStructure())
	require.NoError(t, err)

	var view map[string]any
	require.NoError(t, msgpack.Unmarshal(data, &view))

	for _, key := range []string{
		keyStructureID, keyTitle, keyDepositionDate, keyReleaseDate,
		keyExperimentalMethods, keyResolution, keyRFree, keyRWork,
		keyUnitCell, keySpaceGroup, keyNcsOperatorList, keyBioAssemblyList,
		keyBFactorList, keyAtomIDList, keyAltLocList, keyOccupancyList,
		keySecStructList, keyInsCodeList, keySequenceIndexList, keyChainNameList,
		keyBondAtomList, keyBondOrderList, keyBondResonanceList,
		keyBondProperties, keyAtomProperties, keyGroupProperties,
		keyChainProperties, keyModelProperties, keyExtraProperties,
		keyEntityList,
	} {
		_, present := view[key]
		assert.Falsef(t, present, "key %q should have been omitted from a structure with that field left zero/empty", key)
	}
}

func TestEncodeRejectsNonPositiveDivisor(t *testing.T) {
	_, err := Encode(minimalStructure(), WithCoordDivisor(0))
	require.Error(t, err)

	var invalid *errs.InvalidOption
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "coordDivisor", invalid.Option)
}

func TestEncodeRejectsNonPositiveChainNameWidth(t *testing.T) {
	_, err := Encode(minimalStructure(), WithChainNameMaxLength(0))
	require.Error(t, err)

	var invalid *errs.InvalidOption
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "chainNameMaxLength", invalid.Option)
}

func TestDedupeGroupTypesCollapsesIdenticalTemplates(t *testing.T) {
	gt := GroupType{
		AtomNameList:     []string{"CA"},
		ElementList:      []string{"C"},
		FormalChargeList: []int32{0},
		GroupName:        "ALA",
		SingleLetterCode: "A",
		ChemCompType:     "L-PEPTIDE LINKING",
	}

	list, groupTypeList := dedupeGroupTypes([]GroupType{gt, gt}, []int32{0, 1})
	require.Len(t, list, 1)
	assert.Equal(t, []int32{0, 0}, groupTypeList)
}

func TestDedupeGroupTypesLeavesOutOfRangeIndexForValidate(t *testing.T) {
	gt := GroupType{GroupName: "ALA"}

	_, groupTypeList := dedupeGroupTypes([]GroupType{gt}, []int32{5})
	assert.Equal(t, []int32{5}, groupTypeList)
}
