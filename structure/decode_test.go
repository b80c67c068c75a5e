package structure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/arloliu/mmtf/errs"
	"github.com/arloliu/mmtf/internal/diag"
)

func richStructure() *Structure {
	s := minimalStructure()
	s.StructureID = "1ABC"
	s.Title = "Test Structure"
	s.DepositionDate = "2020-01-02"
	s.ReleaseDate = "2020-02-03"
	s.ExperimentalMethods = []string{"X-RAY DIFFRACTION"}
	s.Resolution = 1.8
	s.UnitCell = []float64{10, 20, 30, 90, 90, 90}
	s.SpaceGroup = "P 1"
	s.ChainNameList = []string{"A"}
	s.EntityList = []Entity{{ChainIndexList: []int32{0}, Type: "polymer", Description: "chain A", Sequence: "AC"}}
	s.BondProperties = map[string]any{"note": "custom"}
	s.AtomProperties = map[string]any{"b_iso_equiv": 12.5}

	return s
}

func TestMapRoundTrip(t *testing.T) {
	want := richStructure()

	data, err := Encode(want)
	require.NoError(t, err)

	got, err := Decode(data, nil)
	require.NoError(t, err)

	assert.Equal(t, want.MmtfVersion, got.MmtfVersion)
	assert.Equal(t, want.StructureID, got.StructureID)
	assert.Equal(t, want.Title, got.Title)
	assert.Equal(t, want.DepositionDate, got.DepositionDate)
	assert.Equal(t, want.ReleaseDate, got.ReleaseDate)
	assert.Equal(t, want.ExperimentalMethods, got.ExperimentalMethods)
	assert.InDelta(t, want.Resolution, got.Resolution, 1e-9)
	assert.Equal(t, want.UnitCell, got.UnitCell)
	assert.Equal(t, want.SpaceGroup, got.SpaceGroup)
	assert.Equal(t, want.NumAtoms, got.NumAtoms)
	assert.Equal(t, want.NumGroups, got.NumGroups)
	assert.Equal(t, want.NumChains, got.NumChains)
	assert.Equal(t, want.NumModels, got.NumModels)
	assert.InDeltaSlice(t, []float64{float64(want.XCoordList[0])}, []float64{float64(got.XCoordList[0])}, 1e-3)
	assert.Equal(t, want.ChainIDList, got.ChainIDList)
	assert.Equal(t, want.ChainNameList, got.ChainNameList)
	assert.Equal(t, want.GroupsPerChain, got.GroupsPerChain)
	assert.Equal(t, want.ChainsPerModel, got.ChainsPerModel)
	assert.Equal(t, len(want.GroupList), len(got.GroupList))
	assert.Equal(t, want.GroupList[0].GroupName, got.GroupList[0].GroupName)
	assert.Equal(t, want.EntityList[0].Description, got.EntityList[0].Description)
}

func TestOpaquePropertyRoundTripsAcrossDecodeEncodeDecode(t *testing.T) {
	s := richStructure()

	data1, err := Encode(s)
	require.NoError(t, err)

	decoded1, err := Decode(data1, nil)
	require.NoError(t, err)
	require.Equal(t, "custom", decoded1.BondProperties["note"])

	data2, err := Encode(decoded1)
	require.NoError(t, err)

	decoded2, err := Decode(data2, nil)
	require.NoError(t, err)

	assert.Equal(t, decoded1.BondProperties, decoded2.BondProperties)
	assert.Equal(t, decoded1.AtomProperties, decoded2.AtomProperties)
}

func TestDecodeRejectsUnsupportedVersion(t *testing.T) {
	s := minimalStructure()
	s.MmtfVersion = "99.0"

	data, err := Encode(s)
	require.NoError(t, err)

	_, err = Decode(data, nil)
	require.Error(t, err)

	var unsupported *errs.UnsupportedVersion
	require.ErrorAs(t, err, &unsupported)
}

func TestDecodeWarnsOnUnknownKeyInsideNestedGroupMap(t *testing.T) {
	raw := map[string]any{
		"formalChargeList": []any{int64(0)},
		"atomNameList":     []any{"CA"},
		"elementList":      []any{"C"},
		"groupName":        "ALA",
		"singleLetterCode": "A",
		"chemCompType":     "L-PEPTIDE LINKING",
		"unexpectedKey":    "surprise",
	}

	core, logs := observer.New(zap.WarnLevel)
	logger := diag.New(zap.New(core))

	_, err := decodeGroupType(raw, logger)
	require.NoError(t, err)

	require.Equal(t, 1, logs.Len())
	assert.Contains(t, logs.All()[0].Message, "unknown key")
}

func TestEncodeThenRawUnmarshalCollapsesDuplicateGroupListEntries(t *testing.T) {
	s := minimalStructure()
	s.GroupList = []GroupType{s.GroupList[0], s.GroupList[0]}
	s.GroupTypeList = []int32{0, 1}
	s.NumGroups = 2
	s.GroupIDList = []int32{1, 2}
	s.GroupsPerChain = []int{2}

	data, err := Encode(s)
	require.NoError(t, err)

	var view map[string]any
	require.NoError(t, msgpack.Unmarshal(data, &view))

	groupList, ok := view["groupList"].([]any)
	require.True(t, ok)
	assert.Len(t, groupList, 1)
}
