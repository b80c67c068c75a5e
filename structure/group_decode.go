package structure

import (
	"github.com/arloliu/mmtf/errs"
	"github.com/arloliu/mmtf/internal/diag"
)

func decodeGroupType(raw any, logger *diag.Logger) (GroupType, error) {
	m, err := asMap(raw, keyGroupList)
	if err != nil {
		return GroupType{}, err
	}

	var gt GroupType

	if gt.FormalChargeList, err = mapIntSlice(m, "formalChargeList", true); err != nil {
		return GroupType{}, err
	}

	if gt.AtomNameList, err = mapStringSlice(m, "atomNameList", true); err != nil {
		return GroupType{}, err
	}

	if gt.ElementList, err = mapStringSlice(m, "elementList", true); err != nil {
		return GroupType{}, err
	}

	if gt.BondAtomList, err = mapIntSlice(m, "bondAtomList", false); err != nil {
		return GroupType{}, err
	}

	if gt.BondOrderList, err = mapInt8Slice(m, "bondOrderList", false); err != nil {
		return GroupType{}, err
	}

	if gt.BondResonanceList, err = mapInt8Slice(m, "bondResonanceList", false); err != nil {
		return GroupType{}, err
	}

	if len(gt.BondAtomList) != 2*len(gt.BondOrderList) {
		return GroupType{}, &errs.LengthMismatch{Key: "bondAtomList", Expected: 2 * len(gt.BondOrderList), Got: len(gt.BondAtomList)}
	}

	if gt.GroupName, err = mapString(m, "groupName", true); err != nil {
		return GroupType{}, err
	}

	if gt.SingleLetterCode, err = mapString(m, "singleLetterCode", true); err != nil {
		return GroupType{}, err
	}

	if len(gt.SingleLetterCode) > 1 {
		return GroupType{}, &errs.FieldTooLong{Field: "singleLetterCode", Limit: 1}
	}

	if gt.ChemCompType, err = mapString(m, "chemCompType", true); err != nil {
		return GroupType{}, err
	}

	if len(gt.FormalChargeList) != len(gt.AtomNameList) || len(gt.AtomNameList) != len(gt.ElementList) {
		return GroupType{}, &errs.LengthMismatch{Key: "atomNameList", Expected: len(gt.FormalChargeList), Got: len(gt.AtomNameList)}
	}

	reportUnknownKeys(m, logger,
		"formalChargeList", "atomNameList", "elementList", "bondAtomList",
		"bondOrderList", "bondResonanceList", "groupName", "singleLetterCode", "chemCompType")

	return gt, nil
}

func encodeGroupType(gt GroupType) map[string]any {
	m := map[string]any{
		"formalChargeList": int32SliceToAny(gt.FormalChargeList),
		"atomNameList":     stringSliceToAny(gt.AtomNameList),
		"elementList":      stringSliceToAny(gt.ElementList),
		"groupName":        gt.GroupName,
		"singleLetterCode": gt.SingleLetterCode,
		"chemCompType":     gt.ChemCompType,
	}

	if len(gt.BondAtomList) > 0 {
		m["bondAtomList"] = int32SliceToAny(gt.BondAtomList)
		m["bondOrderList"] = int8SliceToAny(gt.BondOrderList)
	}

	if len(gt.BondResonanceList) > 0 {
		m["bondResonanceList"] = int8SliceToAny(gt.BondResonanceList)
	}

	return m
}

func decodeEntity(raw any, logger *diag.Logger) (Entity, error) {
	m, err := asMap(raw, keyEntityList)
	if err != nil {
		return Entity{}, err
	}

	var e Entity

	if e.ChainIndexList, err = mapIntSlice(m, "chainIndexList", true); err != nil {
		return Entity{}, err
	}

	if e.Type, err = mapString(m, "type", false); err != nil {
		return Entity{}, err
	}

	if e.Description, err = mapString(m, "description", false); err != nil {
		return Entity{}, err
	}

	if e.Sequence, err = mapString(m, "sequence", false); err != nil {
		return Entity{}, err
	}

	reportUnknownKeys(m, logger, "chainIndexList", "type", "description", "sequence")

	return e, nil
}

func encodeEntity(e Entity) map[string]any {
	return map[string]any{
		"chainIndexList": int32SliceToAny(e.ChainIndexList),
		"type":           e.Type,
		"description":    e.Description,
		"sequence":       e.Sequence,
	}
}

func decodeTransform(raw any, logger *diag.Logger) (Transform, error) {
	m, err := asMap(raw, "transformList")
	if err != nil {
		return Transform{}, err
	}

	var t Transform

	if t.ChainIndexList, err = mapIntSlice(m, "chainIndexList", true); err != nil {
		return Transform{}, err
	}

	matArr, ok := m["matrix"].([]any)
	if !ok || len(matArr) != 16 {
		return Transform{}, &errs.LengthMismatch{Key: "matrix", Expected: 16, Got: len(matArr)}
	}

	for i, e := range matArr {
		f, ok := toFloat64(e)
		if !ok {
			return Transform{}, &errs.TypeMismatch{Key: "matrix", Wanted: "float", Got: ""}
		}

		t.Matrix[i] = f
	}

	reportUnknownKeys(m, logger, "chainIndexList", "matrix")

	return t, nil
}

func encodeTransform(t Transform) map[string]any {
	mat := make([]any, 16)
	for i, v := range t.Matrix {
		mat[i] = v
	}

	return map[string]any{
		"chainIndexList": int32SliceToAny(t.ChainIndexList),
		"matrix":         mat,
	}
}

func decodeBioAssembly(raw any, logger *diag.Logger) (BioAssembly, error) {
	m, err := asMap(raw, keyBioAssemblyList)
	if err != nil {
		return BioAssembly{}, err
	}

	var b BioAssembly

	if b.Name, err = mapString(m, "name", true); err != nil {
		return BioAssembly{}, err
	}

	txArr, ok := m["transformList"].([]any)
	if !ok {
		return BioAssembly{}, &errs.TypeMismatch{Key: "transformList", Wanted: "array", Got: ""}
	}

	b.TransformList = make([]Transform, len(txArr))
	for i, raw := range txArr {
		t, err := decodeTransform(raw, logger)
		if err != nil {
			return BioAssembly{}, err
		}

		b.TransformList[i] = t
	}

	reportUnknownKeys(m, logger, "name", "transformList")

	return b, nil
}

func encodeBioAssembly(b BioAssembly) map[string]any {
	tx := make([]any, len(b.TransformList))
	for i, t := range b.TransformList {
		tx[i] = encodeTransform(t)
	}

	return map[string]any{
		"name":          b.Name,
		"transformList": tx,
	}
}

func int32SliceToAny(xs []int32) []any {
	out := make([]any, len(xs))
	for i, v := range xs {
		out[i] = v
	}

	return out
}

func int8SliceToAny(xs []int8) []any {
	out := make([]any, len(xs))
	for i, v := range xs {
		out[i] = v
	}

	return out
}

func stringSliceToAny(xs []string) []any {
	out := make([]any, len(xs))
	for i, v := range xs {
		out[i] = v
	}

	return out
}
