package structure

import (
	"math"

	"github.com/arloliu/mmtf/codec"
	"github.com/arloliu/mmtf/envelope"
	"github.com/arloliu/mmtf/errs"
)

// Encode packs a Structure into MessagePack-encoded MMTF bytes. Callers
// that need the validator's hard gate should run it themselves first; see
// the top-level mmtf package's EncodeBuffer for the composed entry point.
func Encode(s *Structure, opts ...EncodeOption) ([]byte, error) {
	o := defaultEncodeOptions()
	for _, opt := range opts {
		opt(o)
	}

	if err := checkEncodeOptions(o); err != nil {
		return nil, err
	}

	v := envelope.NewMapView(o.logger)

	v.Set(keyMmtfVersion, orDefault(s.MmtfVersion, "1.0"))
	v.Set(keyMmtfProducer, s.MmtfProducer)
	v.Set(keyStructureID, omitEmptyString(s.StructureID))
	v.Set(keyTitle, omitEmptyString(s.Title))
	v.Set(keyDepositionDate, omitEmptyString(s.DepositionDate))
	v.Set(keyReleaseDate, omitEmptyString(s.ReleaseDate))
	v.Set(keyExperimentalMethods, omitEmptyStringSlice(s.ExperimentalMethods))
	v.Set(keyResolution, omitSentinelFloat(s.Resolution))
	v.Set(keyRFree, omitSentinelFloat(s.RFree))
	v.Set(keyRWork, omitSentinelFloat(s.RWork))

	v.Set(keyUnitCell, omitEmptyFloat64Slice(s.UnitCell))
	v.Set(keySpaceGroup, omitEmptyString(s.SpaceGroup))
	v.Set(keyNcsOperatorList, encodeMatricesOrNil(s.NcsOperatorList))
	v.Set(keyBioAssemblyList, encodeBioAssembliesOrNil(s.BioAssemblyList))

	v.Set(keyNumBonds, s.NumBonds)
	v.Set(keyNumAtoms, s.NumAtoms)
	v.Set(keyNumGroups, s.NumGroups)
	v.Set(keyNumChains, s.NumChains)
	v.Set(keyNumModels, s.NumModels)

	groupList, groupTypeList := dedupeGroupTypes(s.GroupList, s.GroupTypeList)
	v.Set(keyGroupList, encodeGroupListOrNil(groupList))
	v.Set(keyEntityList, encodeEntityListOrNil(s.EntityList))

	v.SetBinary(keyXCoordList, codec.EncodeDeltaRecursiveQuantFloat(s.XCoordList, o.coordDivisor))
	v.SetBinary(keyYCoordList, codec.EncodeDeltaRecursiveQuantFloat(s.YCoordList, o.coordDivisor))
	v.SetBinary(keyZCoordList, codec.EncodeDeltaRecursiveQuantFloat(s.ZCoordList, o.coordDivisor))

	if len(s.BFactorList) > 0 {
		v.SetBinary(keyBFactorList, codec.EncodeDeltaRecursiveQuantFloat(s.BFactorList, o.bFactorDivisor))
	}

	if len(s.AtomIDList) > 0 {
		v.SetBinary(keyAtomIDList, codec.EncodeRunLengthDeltaInt32(s.AtomIDList))
	}

	if len(s.AltLocList) > 0 {
		v.SetBinary(keyAltLocList, codec.EncodeRunLengthChar(s.AltLocList))
	}

	if len(s.OccupancyList) > 0 {
		v.SetBinary(keyOccupancyList, codec.EncodeRunLengthQuantFloat(s.OccupancyList, o.occupancyDivisor))
	}

	v.SetBinary(keyGroupIDList, codec.EncodeRunLengthDeltaInt32(s.GroupIDList))
	v.SetBinary(keyGroupTypeList, codec.EncodeInt32Raw(groupTypeList))

	if len(s.SecStructList) > 0 {
		v.SetBinary(keySecStructList, codec.EncodeInt8Raw(s.SecStructList))
	}

	if len(s.InsCodeList) > 0 {
		v.SetBinary(keyInsCodeList, codec.EncodeRunLengthChar(s.InsCodeList))
	}

	if len(s.SequenceIndexList) > 0 {
		v.SetBinary(keySequenceIndexList, codec.EncodeRunLengthDeltaInt32(s.SequenceIndexList))
	}

	fsBlob, err := codec.EncodeFixedString(s.ChainIDList, o.chainNameWidth)
	if err != nil {
		return nil, err
	}

	v.SetBinary(keyChainIDList, fsBlob)

	if len(s.ChainNameList) > 0 {
		nameBlob, err := codec.EncodeFixedString(s.ChainNameList, o.chainNameWidth)
		if err != nil {
			return nil, err
		}

		v.SetBinary(keyChainNameList, nameBlob)
	}

	v.Set(keyGroupsPerChain, intSliceToAny(s.GroupsPerChain))
	v.Set(keyChainsPerModel, intSliceToAny(s.ChainsPerModel))

	if len(s.BondAtomList) > 0 {
		v.SetBinary(keyBondAtomList, codec.EncodeInt32Raw(s.BondAtomList))
	}

	if len(s.BondOrderList) > 0 {
		v.SetBinary(keyBondOrderList, codec.EncodeInt8Raw(s.BondOrderList))
	}

	if len(s.BondResonanceList) > 0 {
		v.SetBinary(keyBondResonanceList, codec.EncodeInt8Raw(s.BondResonanceList))
	}

	v.Set(keyBondProperties, omitEmptyMap(s.BondProperties))
	v.Set(keyAtomProperties, omitEmptyMap(s.AtomProperties))
	v.Set(keyGroupProperties, omitEmptyMap(s.GroupProperties))
	v.Set(keyChainProperties, omitEmptyMap(s.ChainProperties))
	v.Set(keyModelProperties, omitEmptyMap(s.ModelProperties))
	v.Set(keyExtraProperties, omitEmptyMap(s.ExtraProperties))

	return v.Bytes()
}

// checkEncodeOptions enforces spec.md §4.7: both divisors must be
// positive and chainNameMaxLength must be a positive integer. A
// non-positive divisor would silently divide-by-zero on the next
// decode instead of failing at the point the caller chose the value.
func checkEncodeOptions(o *EncodeOptions) error {
	if o.coordDivisor <= 0 {
		return &errs.InvalidOption{Option: "coordDivisor", Value: int(o.coordDivisor)}
	}

	if o.occupancyDivisor <= 0 {
		return &errs.InvalidOption{Option: "occupancyDivisor", Value: int(o.occupancyDivisor)}
	}

	if o.bFactorDivisor <= 0 {
		return &errs.InvalidOption{Option: "bFactorDivisor", Value: int(o.bFactorDivisor)}
	}

	if o.chainNameWidth <= 0 {
		return &errs.InvalidOption{Option: "chainNameMaxLength", Value: o.chainNameWidth}
	}

	return nil
}

// dedupeGroupTypes runs list through a GroupCatalog so structurally
// identical templates collapse to one wire-format entry, and remaps
// groupTypeList's indices to match. A caller who already de-duplicated
// list themselves pays nothing extra: the catalog just maps every index
// to itself.
func dedupeGroupTypes(list []GroupType, groupTypeList []int32) ([]GroupType, []int32) {
	catalog := NewGroupCatalog()
	remap := make([]int, len(list))
	for i, gt := range list {
		remap[i] = catalog.Add(gt)
	}

	remapped := make([]int32, len(groupTypeList))
	for i, idx := range groupTypeList {
		if idx < 0 || int(idx) >= len(remap) {
			remapped[i] = idx // out of range, left for validate to report
			continue
		}

		remapped[i] = int32(remap[idx])
	}

	return catalog.List(), remapped
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}

	return s
}

func omitEmptyString(s string) any {
	if s == "" {
		return nil
	}

	return s
}

func omitEmptyStringSlice(xs []string) any {
	if len(xs) == 0 {
		return nil
	}

	return stringSliceToAny(xs)
}

func omitEmptyFloat64Slice(xs []float64) any {
	if len(xs) == 0 {
		return nil
	}

	out := make([]any, len(xs))
	for i, v := range xs {
		out[i] = v
	}

	return out
}

func omitSentinelFloat(f float64) any {
	if f == 0 || math.IsNaN(f) {
		return nil
	}

	return f
}

func omitEmptyMap(m map[string]any) any {
	if len(m) == 0 {
		return nil
	}

	return m
}

func intSliceToAny(xs []int) []any {
	out := make([]any, len(xs))
	for i, v := range xs {
		out[i] = v
	}

	return out
}

func encodeMatricesOrNil(mats [][16]float64) any {
	if len(mats) == 0 {
		return nil
	}

	out := make([]any, len(mats))
	for i, m := range mats {
		row := make([]any, 16)
		for j, v := range m {
			row[j] = v
		}

		out[i] = row
	}

	return out
}

func encodeBioAssembliesOrNil(list []BioAssembly) any {
	if len(list) == 0 {
		return nil
	}

	out := make([]any, len(list))
	for i, b := range list {
		out[i] = encodeBioAssembly(b)
	}

	return out
}

func encodeGroupListOrNil(list []GroupType) any {
	out := make([]any, len(list))
	for i, g := range list {
		out[i] = encodeGroupType(g)
	}

	return out
}

func encodeEntityListOrNil(list []Entity) any {
	if len(list) == 0 {
		return nil
	}

	out := make([]any, len(list))
	for i, e := range list {
		out[i] = encodeEntity(e)
	}

	return out
}
