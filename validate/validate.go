// Package validate implements the single cross-field consistency check
// shared by encode (as a hard gate) and decode (as an advisory,
// non-fatal pass): every invariant from the original hasConsistentData
// predicate, translated into Go.
package validate

import (
	"github.com/arloliu/mmtf/errs"
	"github.com/arloliu/mmtf/structure"
)

// Options configures the handful of checks whose bound depends on an
// encode-time choice rather than the wire format itself.
type Options struct {
	chainNameMaxLength int
}

// Option mutates an Options.
type Option func(*Options)

func defaultOptions() *Options {
	return &Options{chainNameMaxLength: structure.DefaultChainNameWidth}
}

// WithChainNameMaxLength overrides the maximum chainIdList/chainNameList
// byte length Check enforces. Callers that pass
// structure.WithChainNameMaxLength to Encode should pass the same value
// here (see structure.ChainNameMaxLength), or a wider-than-default chain
// name will be rejected by Check before Encode ever sees the option.
func WithChainNameMaxLength(n int) Option {
	return func(o *Options) { o.chainNameMaxLength = n }
}

// Check runs every structural invariant against s and returns the first
// violation found, or nil if s is internally consistent.
func Check(s *structure.Structure, opts ...Option) error {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	if len(s.UnitCell) != 0 && len(s.UnitCell) != 6 {
		return &errs.LengthMismatch{Key: "unitCell", Expected: 6, Got: len(s.UnitCell)}
	}

	if err := checkDateField("depositionDate", s.DepositionDate); err != nil {
		return err
	}

	if err := checkDateField("releaseDate", s.ReleaseDate); err != nil {
		return err
	}

	if err := checkChains(s); err != nil {
		return err
	}

	if err := checkModels(s); err != nil {
		return err
	}

	if err := checkGroupTypeIndices(s); err != nil {
		return err
	}

	if err := checkEntityChainIndices(s); err != nil {
		return err
	}

	if err := checkAssemblyChainIndices(s); err != nil {
		return err
	}

	if err := checkColumnLengths(s, o.chainNameMaxLength); err != nil {
		return err
	}

	if err := checkBonds(s); err != nil {
		return err
	}

	if err := checkSecStruct(s); err != nil {
		return err
	}

	if err := checkSequenceIndex(s); err != nil {
		return err
	}

	return nil
}

func checkDateField(key, value string) error {
	if value == "" {
		return nil
	}

	if len(value) != 10 || value[4] != '-' || value[7] != '-' {
		return &errs.InvalidDateFormat{Key: key, Value: value}
	}

	for i, c := range []byte(value) {
		if i == 4 || i == 7 {
			continue
		}

		if c < '0' || c > '9' {
			return &errs.InvalidDateFormat{Key: key, Value: value}
		}
	}

	return nil
}

// checkChains verifies groupsPerChain sums to numGroups and has length
// numChains.
func checkChains(s *structure.Structure) error {
	if len(s.GroupsPerChain) != s.NumChains {
		return &errs.LengthMismatch{Key: "groupsPerChain", Expected: s.NumChains, Got: len(s.GroupsPerChain)}
	}

	sum := 0
	for _, n := range s.GroupsPerChain {
		sum += n
	}

	if sum != s.NumGroups {
		return &errs.Inconsistent{Reason: "sum of groupsPerChain does not equal numGroups"}
	}

	return nil
}

// checkModels verifies chainsPerModel sums to numChains and has length
// numModels.
func checkModels(s *structure.Structure) error {
	if len(s.ChainsPerModel) != s.NumModels {
		return &errs.LengthMismatch{Key: "chainsPerModel", Expected: s.NumModels, Got: len(s.ChainsPerModel)}
	}

	sum := 0
	for _, n := range s.ChainsPerModel {
		sum += n
	}

	if sum != s.NumChains {
		return &errs.Inconsistent{Reason: "sum of chainsPerModel does not equal numChains"}
	}

	return nil
}

func checkGroupTypeIndices(s *structure.Structure) error {
	if len(s.GroupTypeList) != s.NumGroups {
		return &errs.LengthMismatch{Key: "groupTypeList", Expected: s.NumGroups, Got: len(s.GroupTypeList)}
	}

	for _, idx := range s.GroupTypeList {
		if idx < 0 || int(idx) >= len(s.GroupList) {
			return &errs.IndexOutOfRange{Field: "groupTypeList", Value: int(idx), Max: len(s.GroupList)}
		}
	}

	atoms := 0
	for _, idx := range s.GroupTypeList {
		atoms += len(s.GroupList[idx].AtomNameList)
	}

	if atoms != s.NumAtoms {
		return &errs.Inconsistent{Reason: "total atoms across traversed groups does not equal numAtoms"}
	}

	return nil
}

func checkEntityChainIndices(s *structure.Structure) error {
	for _, e := range s.EntityList {
		for _, idx := range e.ChainIndexList {
			if idx < 0 || int(idx) >= s.NumChains {
				return &errs.IndexOutOfRange{Field: "entityList.chainIndexList", Value: int(idx), Max: s.NumChains}
			}
		}
	}

	return nil
}

func checkAssemblyChainIndices(s *structure.Structure) error {
	for _, a := range s.BioAssemblyList {
		for _, t := range a.TransformList {
			for _, idx := range t.ChainIndexList {
				if idx < 0 || int(idx) >= s.NumChains {
					return &errs.IndexOutOfRange{Field: "bioAssemblyList.chainIndexList", Value: int(idx), Max: s.NumChains}
				}
			}
		}
	}

	return nil
}

// checkColumnLengths verifies every per-atom/per-group/per-chain column
// that is present matches its governing count, that fixed-width chain
// identifiers do not exceed chainNameMaxLength bytes, and that altLocList
// and insCodeList entries are at most one byte.
func checkColumnLengths(s *structure.Structure, chainNameMaxLength int) error {
	atomCols := map[string]int{
		"xCoordList":    len(s.XCoordList),
		"yCoordList":    len(s.YCoordList),
		"zCoordList":    len(s.ZCoordList),
		"bFactorList":   len(s.BFactorList),
		"atomIdList":    len(s.AtomIDList),
		"altLocList":    len(s.AltLocList),
		"occupancyList": len(s.OccupancyList),
	}

	for key, n := range atomCols {
		if n != 0 && n != s.NumAtoms {
			return &errs.LengthMismatch{Key: key, Expected: s.NumAtoms, Got: n}
		}
	}

	groupCols := map[string]int{
		"groupIdList":       len(s.GroupIDList),
		"secStructList":     len(s.SecStructList),
		"insCodeList":       len(s.InsCodeList),
		"sequenceIndexList": len(s.SequenceIndexList),
	}

	for key, n := range groupCols {
		if n != 0 && n != s.NumGroups {
			return &errs.LengthMismatch{Key: key, Expected: s.NumGroups, Got: n}
		}
	}

	if len(s.ChainIDList) != s.NumChains {
		return &errs.LengthMismatch{Key: "chainIdList", Expected: s.NumChains, Got: len(s.ChainIDList)}
	}

	if len(s.ChainNameList) != 0 && len(s.ChainNameList) != s.NumChains {
		return &errs.LengthMismatch{Key: "chainNameList", Expected: s.NumChains, Got: len(s.ChainNameList)}
	}

	for _, id := range s.ChainIDList {
		if len(id) > chainNameMaxLength {
			return &errs.FieldTooLong{Field: "chainIdList", Limit: chainNameMaxLength}
		}
	}

	for _, name := range s.ChainNameList {
		if len(name) > chainNameMaxLength {
			return &errs.FieldTooLong{Field: "chainNameList", Limit: chainNameMaxLength}
		}
	}

	for _, c := range s.AltLocList {
		if len(c) > 1 {
			return &errs.FieldTooLong{Field: "altLocList", Limit: 1}
		}
	}

	for _, c := range s.InsCodeList {
		if len(c) > 1 {
			return &errs.FieldTooLong{Field: "insCodeList", Limit: 1}
		}
	}

	return nil
}

func checkBonds(s *structure.Structure) error {
	if len(s.BondAtomList) != 2*len(s.BondOrderList) {
		return &errs.LengthMismatch{Key: "bondAtomList", Expected: 2 * len(s.BondOrderList), Got: len(s.BondAtomList)}
	}

	if len(s.BondResonanceList) != 0 && len(s.BondResonanceList) != len(s.BondOrderList) {
		return &errs.LengthMismatch{Key: "bondResonanceList", Expected: len(s.BondOrderList), Got: len(s.BondResonanceList)}
	}

	for _, o := range s.BondOrderList {
		if !isValidBondOrder(o) {
			return &errs.Inconsistent{Reason: "bondOrderList contains a value outside {1,2,3,4,-1}"}
		}
	}

	for _, r := range s.BondResonanceList {
		if r != 0 && r != 1 && r != -1 {
			return &errs.Inconsistent{Reason: "bondResonanceList contains a value outside {0,1,-1}"}
		}
	}

	maxAtom := s.NumAtoms
	for _, idx := range s.BondAtomList {
		if idx < 0 || int(idx) >= maxAtom {
			return &errs.IndexOutOfRange{Field: "bondAtomList", Value: int(idx), Max: maxAtom}
		}
	}

	totalBonds := len(s.BondOrderList)
	for _, typeIdx := range s.GroupTypeList {
		if int(typeIdx) < 0 || int(typeIdx) >= len(s.GroupList) {
			continue // already reported by checkGroupTypeIndices
		}

		totalBonds += len(s.GroupList[typeIdx].BondOrderList)
	}

	if totalBonds != s.NumBonds {
		return &errs.Inconsistent{Reason: "total bond count across traversed groups and inter-group bonds does not equal numBonds"}
	}

	for _, gt := range s.GroupList {
		if len(gt.BondAtomList) != 2*len(gt.BondOrderList) {
			return &errs.LengthMismatch{Key: "groupList.bondAtomList", Expected: 2 * len(gt.BondOrderList), Got: len(gt.BondAtomList)}
		}

		for _, idx := range gt.BondAtomList {
			if idx < 0 || int(idx) >= len(gt.AtomNameList) {
				return &errs.IndexOutOfRange{Field: "groupList.bondAtomList", Value: int(idx), Max: len(gt.AtomNameList)}
			}
		}

		for _, o := range gt.BondOrderList {
			if !isValidBondOrder(o) {
				return &errs.Inconsistent{Reason: "groupList bondOrderList contains a value outside {1,2,3,4,-1}"}
			}
		}

		if len(gt.BondResonanceList) != 0 && len(gt.BondResonanceList) != len(gt.BondOrderList) {
			return &errs.Inconsistent{Reason: "groupList bondResonanceList length disagrees with bondOrderList"}
		}
	}

	return nil
}

func isValidBondOrder(o int8) bool {
	return o == 1 || o == 2 || o == 3 || o == 4 || o == -1
}

func checkSecStruct(s *structure.Structure) error {
	for _, v := range s.SecStructList {
		if v < -1 || v > 7 {
			return &errs.Inconsistent{Reason: "secStructList value outside [-1,7]"}
		}
	}

	return nil
}

// checkSequenceIndex verifies every non-sentinel sequenceIndexList entry
// indexes within the bounds of its owning entity's reference sequence.
func checkSequenceIndex(s *structure.Structure) error {
	if len(s.SequenceIndexList) == 0 {
		return nil
	}

	chainOfGroup := chainIndexPerGroup(s)
	entityOfChain := entityIndexPerChain(s)

	for groupIdx, seqIdx := range s.SequenceIndexList {
		if seqIdx == -1 {
			continue
		}

		if seqIdx < -1 {
			return &errs.IndexOutOfRange{Field: "sequenceIndexList", Value: int(seqIdx), Max: -1}
		}

		chainIdx, ok := chainOfGroup[groupIdx]
		if !ok {
			continue
		}

		entityIdx, ok := entityOfChain[chainIdx]
		if !ok {
			continue
		}

		seqLen := len([]rune(s.EntityList[entityIdx].Sequence))
		if int(seqIdx) >= seqLen {
			return &errs.IndexOutOfRange{Field: "sequenceIndexList", Value: int(seqIdx), Max: seqLen}
		}
	}

	return nil
}

func chainIndexPerGroup(s *structure.Structure) map[int]int {
	out := make(map[int]int, s.NumGroups)

	groupIdx := 0
	for chainIdx, n := range s.GroupsPerChain {
		for range n {
			out[groupIdx] = chainIdx
			groupIdx++
		}
	}

	return out
}

func entityIndexPerChain(s *structure.Structure) map[int]int {
	out := make(map[int]int)

	for entityIdx, e := range s.EntityList {
		for _, chainIdx := range e.ChainIndexList {
			out[int(chainIdx)] = entityIdx
		}
	}

	return out
}
