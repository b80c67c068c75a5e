package structure

import (
	"github.com/arloliu/mmtf/envelope"
	"github.com/arloliu/mmtf/errs"
	"github.com/arloliu/mmtf/internal/diag"
)

// Decode materializes a Structure from MessagePack-encoded MMTF bytes.
func Decode(data []byte, logger *diag.Logger) (*Structure, error) {
	view, err := envelope.Parse(data, logger)
	if err != nil {
		return nil, err
	}

	return decodeFromView(view)
}

func decodeFromView(v *envelope.MapView) (*Structure, error) {
	s := &Structure{}

	var err error
	if s.MmtfVersion, _, err = v.String(keyMmtfVersion, isRequired(keyMmtfVersion)); err != nil {
		return nil, err
	}

	if err := checkVersion(s.MmtfVersion); err != nil {
		return nil, err
	}

	if s.MmtfProducer, _, err = v.String(keyMmtfProducer, isRequired(keyMmtfProducer)); err != nil {
		return nil, err
	}

	if s.StructureID, _, err = v.String(keyStructureID, isRequired(keyStructureID)); err != nil {
		return nil, err
	}

	if s.Title, _, err = v.String(keyTitle, isRequired(keyTitle)); err != nil {
		return nil, err
	}

	if s.DepositionDate, _, err = v.String(keyDepositionDate, isRequired(keyDepositionDate)); err != nil {
		return nil, err
	}

	if err := checkDate(keyDepositionDate, s.DepositionDate); err != nil {
		return nil, err
	}

	if s.ReleaseDate, _, err = v.String(keyReleaseDate, isRequired(keyReleaseDate)); err != nil {
		return nil, err
	}

	if err := checkDate(keyReleaseDate, s.ReleaseDate); err != nil {
		return nil, err
	}

	if s.ExperimentalMethods, _, err = v.StringSlice(keyExperimentalMethods, isRequired(keyExperimentalMethods)); err != nil {
		return nil, err
	}

	if s.Resolution, _, err = v.Float64(keyResolution, isRequired(keyResolution)); err != nil {
		return nil, err
	}

	if s.RFree, _, err = v.Float64(keyRFree, isRequired(keyRFree)); err != nil {
		return nil, err
	}

	if s.RWork, _, err = v.Float64(keyRWork, isRequired(keyRWork)); err != nil {
		return nil, err
	}

	if s.UnitCell, _, err = v.FloatSlice(keyUnitCell, isRequired(keyUnitCell)); err != nil {
		return nil, err
	}

	if len(s.UnitCell) != 0 && len(s.UnitCell) != 6 {
		return nil, &errs.LengthMismatch{Key: keyUnitCell, Expected: 6, Got: len(s.UnitCell)}
	}

	if s.SpaceGroup, _, err = v.String(keySpaceGroup, isRequired(keySpaceGroup)); err != nil {
		return nil, err
	}

	if s.NcsOperatorList, _, err = v.FloatMatrices(keyNcsOperatorList, isRequired(keyNcsOperatorList)); err != nil {
		return nil, err
	}

	rawAssemblies, _, err := v.RawArray(keyBioAssemblyList, isRequired(keyBioAssemblyList))
	if err != nil {
		return nil, err
	}

	s.BioAssemblyList = make([]BioAssembly, len(rawAssemblies))
	for i, raw := range rawAssemblies {
		if s.BioAssemblyList[i], err = decodeBioAssembly(raw, v.Logger()); err != nil {
			return nil, err
		}
	}

	if s.NumBonds, _, err = v.Int(keyNumBonds, isRequired(keyNumBonds)); err != nil {
		return nil, err
	}

	if s.NumAtoms, _, err = v.Int(keyNumAtoms, isRequired(keyNumAtoms)); err != nil {
		return nil, err
	}

	if s.NumGroups, _, err = v.Int(keyNumGroups, isRequired(keyNumGroups)); err != nil {
		return nil, err
	}

	if s.NumChains, _, err = v.Int(keyNumChains, isRequired(keyNumChains)); err != nil {
		return nil, err
	}

	if s.NumModels, _, err = v.Int(keyNumModels, isRequired(keyNumModels)); err != nil {
		return nil, err
	}

	rawGroups, _, err := v.RawArray(keyGroupList, isRequired(keyGroupList))
	if err != nil {
		return nil, err
	}

	s.GroupList = make([]GroupType, len(rawGroups))
	for i, raw := range rawGroups {
		if s.GroupList[i], err = decodeGroupType(raw, v.Logger()); err != nil {
			return nil, err
		}
	}

	rawEntities, _, err := v.RawArray(keyEntityList, isRequired(keyEntityList))
	if err != nil {
		return nil, err
	}

	s.EntityList = make([]Entity, len(rawEntities))
	for i, raw := range rawEntities {
		if s.EntityList[i], err = decodeEntity(raw, v.Logger()); err != nil {
			return nil, err
		}
	}

	if s.XCoordList, _, err = v.FloatColumn(keyXCoordList, isRequired(keyXCoordList)); err != nil {
		return nil, err
	}

	if s.YCoordList, _, err = v.FloatColumn(keyYCoordList, isRequired(keyYCoordList)); err != nil {
		return nil, err
	}

	if s.ZCoordList, _, err = v.FloatColumn(keyZCoordList, isRequired(keyZCoordList)); err != nil {
		return nil, err
	}

	if s.BFactorList, _, err = v.FloatColumn(keyBFactorList, isRequired(keyBFactorList)); err != nil {
		return nil, err
	}

	if s.AtomIDList, _, err = v.Int32Column(keyAtomIDList, isRequired(keyAtomIDList)); err != nil {
		return nil, err
	}

	if s.AltLocList, _, err = v.CharColumn(keyAltLocList, isRequired(keyAltLocList)); err != nil {
		return nil, err
	}

	if s.OccupancyList, _, err = v.FloatColumn(keyOccupancyList, isRequired(keyOccupancyList)); err != nil {
		return nil, err
	}

	if s.GroupIDList, _, err = v.Int32Column(keyGroupIDList, isRequired(keyGroupIDList)); err != nil {
		return nil, err
	}

	if s.GroupTypeList, _, err = v.Int32Column(keyGroupTypeList, isRequired(keyGroupTypeList)); err != nil {
		return nil, err
	}

	if s.SecStructList, _, err = v.Int8Column(keySecStructList, isRequired(keySecStructList)); err != nil {
		return nil, err
	}

	if s.InsCodeList, _, err = v.CharColumn(keyInsCodeList, isRequired(keyInsCodeList)); err != nil {
		return nil, err
	}

	if s.SequenceIndexList, _, err = v.Int32Column(keySequenceIndexList, isRequired(keySequenceIndexList)); err != nil {
		return nil, err
	}

	if s.ChainIDList, _, err = v.FixedWidthStringColumn(keyChainIDList, isRequired(keyChainIDList)); err != nil {
		return nil, err
	}

	if s.ChainNameList, _, err = v.FixedWidthStringColumn(keyChainNameList, isRequired(keyChainNameList)); err != nil {
		return nil, err
	}

	groupsPerChain, _, err := v.IntSlice(keyGroupsPerChain, isRequired(keyGroupsPerChain))
	if err != nil {
		return nil, err
	}

	s.GroupsPerChain = groupsPerChain

	chainsPerModel, _, err := v.IntSlice(keyChainsPerModel, isRequired(keyChainsPerModel))
	if err != nil {
		return nil, err
	}

	s.ChainsPerModel = chainsPerModel

	if s.BondAtomList, _, err = v.Int32Column(keyBondAtomList, isRequired(keyBondAtomList)); err != nil {
		return nil, err
	}

	if s.BondOrderList, _, err = v.Int8Column(keyBondOrderList, isRequired(keyBondOrderList)); err != nil {
		return nil, err
	}

	if s.BondResonanceList, _, err = v.Int8Column(keyBondResonanceList, isRequired(keyBondResonanceList)); err != nil {
		return nil, err
	}

	if s.BondProperties, err = decodeOpaqueMap(v, keyBondProperties); err != nil {
		return nil, err
	}

	if s.AtomProperties, err = decodeOpaqueMap(v, keyAtomProperties); err != nil {
		return nil, err
	}

	if s.GroupProperties, err = decodeOpaqueMap(v, keyGroupProperties); err != nil {
		return nil, err
	}

	if s.ChainProperties, err = decodeOpaqueMap(v, keyChainProperties); err != nil {
		return nil, err
	}

	if s.ModelProperties, err = decodeOpaqueMap(v, keyModelProperties); err != nil {
		return nil, err
	}

	if s.ExtraProperties, err = decodeOpaqueMap(v, keyExtraProperties); err != nil {
		return nil, err
	}

	v.CheckExtraKeys()

	return s, nil
}

func decodeOpaqueMap(v *envelope.MapView, key string) (map[string]any, error) {
	val, ok, err := v.Opaque(key, isRequired(key))
	if err != nil {
		return nil, err
	}

	if !ok {
		return nil, nil
	}

	m, ok := val.(map[string]any)
	if !ok {
		return nil, &errs.TypeMismatch{Key: key, Wanted: "map", Got: ""}
	}

	return m, nil
}
