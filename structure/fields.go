package structure

// Field keys as they appear on the wire, centralized so decode, encode,
// and validate agree on spelling and on which keys are required. This
// mirrors the canonical field order of the original decoder, including
// bondResonanceList, which earlier abridged descriptions of the format
// omit.
const (
	keyMmtfVersion  = "mmtfVersion"
	keyMmtfProducer = "mmtfProducer"

	keyUnitCell        = "unitCell"
	keySpaceGroup      = "spaceGroup"
	keyStructureID     = "structureId"
	keyTitle           = "title"
	keyDepositionDate  = "depositionDate"
	keyReleaseDate     = "releaseDate"
	keyExperimentalMethods = "experimentalMethods"
	keyResolution      = "resolution"
	keyRFree           = "rFree"
	keyRWork           = "rWork"

	keyBioAssemblyList = "bioAssemblyList"
	keyNcsOperatorList = "ncsOperatorList"

	keyNumBonds  = "numBonds"
	keyNumAtoms  = "numAtoms"
	keyNumGroups = "numGroups"
	keyNumChains = "numChains"
	keyNumModels = "numModels"

	keyGroupList  = "groupList"
	keyEntityList = "entityList"

	keyXCoordList    = "xCoordList"
	keyYCoordList    = "yCoordList"
	keyZCoordList    = "zCoordList"
	keyBFactorList   = "bFactorList"
	keyAtomIDList    = "atomIdList"
	keyAltLocList    = "altLocList"
	keyOccupancyList = "occupancyList"

	keyGroupIDList       = "groupIdList"
	keyGroupTypeList     = "groupTypeList"
	keySecStructList     = "secStructList"
	keyInsCodeList       = "insCodeList"
	keySequenceIndexList = "sequenceIndexList"

	keyChainIDList    = "chainIdList"
	keyChainNameList  = "chainNameList"
	keyGroupsPerChain = "groupsPerChain"

	keyChainsPerModel = "chainsPerModel"

	keyBondAtomList      = "bondAtomList"
	keyBondOrderList     = "bondOrderList"
	keyBondResonanceList = "bondResonanceList"

	keyBondProperties  = "bondProperties"
	keyAtomProperties  = "atomProperties"
	keyGroupProperties = "groupProperties"
	keyChainProperties = "chainProperties"
	keyModelProperties = "modelProperties"
	keyExtraProperties = "extraProperties"
)

// Per-field required-ness, consulted by decode to decide whether a missing
// key is an error. Encode decides default omission through its own
// omit* helpers, and validate does not read this table.
var required = map[string]bool{
	keyMmtfVersion:  true,
	keyMmtfProducer: true,

	keyNumBonds:  true,
	keyNumAtoms:  true,
	keyNumGroups: true,
	keyNumChains: true,
	keyNumModels: true,

	keyGroupList: true,

	keyXCoordList: true,
	keyYCoordList: true,
	keyZCoordList: true,

	keyGroupIDList:   true,
	keyGroupTypeList: true,

	keyChainIDList: true,

	keyGroupsPerChain: true,
	keyChainsPerModel: true,
}

// isRequired reports whether key is mandatory per the field dispatcher's
// policy table; every key not listed is optional.
func isRequired(key string) bool {
	return required[key]
}

// DefaultDivisors are the codec parameters used when a caller does not
// override them via an EncodeOption: 1000 for coordinates (3 decimal
// places), 100 for occupancy and B-factor.
const (
	DefaultCoordDivisor     int32 = 1000
	DefaultOccupancyDivisor int32 = 100
	DefaultBFactorDivisor   int32 = 100
	DefaultChainNameWidth         = 4
)
