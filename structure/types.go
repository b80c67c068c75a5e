// Package structure defines the typed record layouts MMTF bytes decode
// into: the Structure aggregate itself plus its GroupType, Entity,
// Transform, and BioAssembly sub-records, and the field dispatcher that
// moves between Structure and the raw map.
package structure

// GroupType is the per-residue template referenced by groupTypeList: a
// parallel set of atom-level columns plus the intra-group bond table.
type GroupType struct {
	FormalChargeList  []int32
	AtomNameList      []string
	ElementList       []string
	BondAtomList      []int32 // flat index pairs into this group's own atoms
	BondOrderList     []int8
	BondResonanceList []int8 // optional, empty when absent
	GroupName         string
	SingleLetterCode  string // exactly one byte when present
	ChemCompType      string
}

// Entity binds a set of chain indices to a molecular type, description,
// and reference sequence.
type Entity struct {
	ChainIndexList []int32
	Type           string
	Description    string
	Sequence       string
}

// Transform is a single 4x4 row-major transform applied to a set of
// chains within a BioAssembly.
type Transform struct {
	ChainIndexList []int32
	Matrix         [16]float64
}

// BioAssembly names a generated biological assembly and the transforms
// that produce it.
type BioAssembly struct {
	Name          string
	TransformList []Transform
}

// Structure is the fully materialized MMTF record.
type Structure struct {
	// Metadata
	MmtfVersion         string
	MmtfProducer        string
	StructureID         string
	Title               string
	DepositionDate      string
	ReleaseDate         string
	ExperimentalMethods []string
	Resolution          float64
	RFree               float64
	RWork               float64

	// Crystallography
	UnitCell        []float64 // length 6 when present
	SpaceGroup      string
	NcsOperatorList [][16]float64
	BioAssemblyList []BioAssembly

	// Counts
	NumBonds  int
	NumAtoms  int
	NumGroups int
	NumChains int
	NumModels int

	GroupList  []GroupType
	EntityList []Entity

	// Per-atom columns, length NumAtoms
	XCoordList     []float32
	YCoordList     []float32
	ZCoordList     []float32
	BFactorList    []float32 // optional, empty when absent
	AtomIDList     []int32   // optional
	AltLocList     []string  // optional, "" per atom when absent
	OccupancyList  []float32 // optional

	// Per-group columns, length NumGroups
	GroupIDList       []int32
	GroupTypeList     []int32
	SecStructList     []int8  // optional, values in [-1,7]
	InsCodeList       []string // optional
	SequenceIndexList []int32 // optional, -1 where not applicable

	// Per-chain columns, length NumChains
	ChainIDList      []string // 4 bytes wide on the wire unless WithChainNameMaxLength sets another width
	ChainNameList    []string // optional
	GroupsPerChain   []int

	// Per-model column, length NumModels
	ChainsPerModel []int

	// Inter-group bonds
	BondAtomList      []int32
	BondOrderList     []int8
	BondResonanceList []int8 // optional

	// Opaque pass-through extension maps
	BondProperties  map[string]any
	AtomProperties  map[string]any
	GroupProperties map[string]any
	ChainProperties map[string]any
	ModelProperties map[string]any
	ExtraProperties map[string]any
}
