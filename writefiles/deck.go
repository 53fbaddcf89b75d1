// Package writefiles emits OpenRadioss input decks (mesh include, starter
// and engine files) and an Abaqus export from the parsed model.
package writefiles

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/JPsnipe/OPEN-RADIOSS/InputParameters"
	"github.com/JPsnipe/OPEN-RADIOSS/ident"
	"github.com/JPsnipe/OPEN-RADIOSS/model"
)

type materialCard struct {
	ID      int
	Law     string
	Name    string
	Params  map[string]float64
	Fail    *model.FailureModel
	Curve   [][2]float64
	FunctID int // LAW36 hardening curve function, 0 when none
}

type grnodCard struct {
	ID    int
	Name  string
	Nodes []int
}

type subsetCard struct {
	ID      int
	Name    string
	Members []int
}

type propCard struct {
	ID        int
	Name      string
	Type      string
	Thickness float64
}

type partCard struct {
	ID       int
	Name     string
	PID      int
	MID      int
	SubsetID int
}

type bcCard struct {
	Name     string
	Motion   bool // /BOUNDARY/PRESCRIBED_MOTION instead of /BCS
	Tra, Rot string
	Dir      int
	Value    float64
	GrnodID  int
}

type interCard struct {
	Name   string
	Type   string
	SlaveG int
	MastG  int
	Fric   float64
}

type impvelCard struct {
	GrnodID    int
	VX, VY, VZ float64
}

type rbodyCard struct {
	ID         int
	Name       string
	MasterNode int
	GrnodID    int
	Mass       float64
}

type rbe2Card struct {
	ID         int
	Name       string
	MasterNode int
	GrnodID    int
}

type rbe3Card struct {
	ID          int
	Name        string
	Dependent   int
	Independent [][2]float64
}

// Deck is one planned assembly: every synthesized entity has its final
// identifier before any text is written, so a preview of a card matches
// the emitted file byte for byte.
type Deck struct {
	Model  *model.Model
	Params *InputParameters.ConversionParameters

	alloc       *ident.Allocator
	materials   []materialCard
	subsets     []subsetCard
	grnods      []grnodCard
	props       []propCard
	parts       []partCard
	bcs         []bcCard
	inters      []interCard
	impvel      *impvelCard
	rbodies     []rbodyCard
	rbe2s       []rbe2Card
	rbe3s       []rbe3Card
	completions []string

	subsetByName map[string]int // element selection name -> subset id
	grnodByName  map[string]int // node selection name -> grnod id
	matRemap     map[int]int    // configured material id -> final id
	defaultMat   int            // lazily synthesized shared material
}

// NewDeck validates the model and plans every identifier the writers
// need, in a fixed order: source materials, subsets and node groups from
// selections in source order, configured materials, properties and parts,
// then card node groups in configuration order.
func NewDeck(m *model.Model, params *InputParameters.ConversionParameters) (*Deck, error) {
	if params == nil {
		params = InputParameters.NewConversionParameters()
	}
	d := &Deck{
		Model:        m,
		Params:       params,
		alloc:        ident.NewAllocator(),
		subsetByName: make(map[string]int),
		grnodByName:  make(map[string]int),
		matRemap:     make(map[int]int),
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if err := d.planMaterials(); err != nil {
		return nil, err
	}
	d.planSelections()
	if err := d.planConfigMaterials(); err != nil {
		return nil, err
	}
	if err := d.planPartsAndProps(); err != nil {
		return nil, err
	}
	if err := d.planCards(); err != nil {
		return nil, err
	}
	return d, nil
}

// Completions lists every value or entity synthesized during planning.
func (d *Deck) Completions() []string { return d.completions }

func (d *Deck) note(format string, args ...interface{}) {
	d.completions = append(d.completions, fmt.Sprintf(format, args...))
}

func (d *Deck) planMaterials() error {
	if !d.Params.EmitMaterials {
		return nil
	}
	for _, id := range d.Model.SortedMaterialIDs() {
		if err := d.alloc.Reserve(ident.ClassMat, id); err != nil {
			return err
		}
		rec := d.Model.Materials[id]
		card := d.completeMaterial(materialCard{
			ID:     id,
			Law:    rec.Law,
			Name:   rec.Name,
			Params: copyParams(rec.Params),
			Fail:   rec.Fail,
			Curve:  rec.Curve,
		})
		d.materials = append(d.materials, card)
	}
	return nil
}

// completeMaterial fills missing parameters with per-law defaults and
// the global elastic fallbacks, resolves the function id for a LAW36
// curve, and completes name-only failure models.
func (d *Deck) completeMaterial(card materialCard) materialCard {
	if card.Law == "" {
		card.Law = "LAW1"
	}
	if card.Name == "" {
		card.Name = fmt.Sprintf("MAT_%d", card.ID)
	}
	if card.Params == nil {
		card.Params = make(map[string]float64)
	}
	var filled []string
	global := map[string]float64{
		"EX": d.Params.Young, "NUXY": d.Params.Poisson, "DENS": d.Params.Density,
	}
	for _, key := range []string{"EX", "NUXY", "DENS"} {
		if _, ok := card.Params[key]; !ok {
			card.Params[key] = global[key]
			filled = append(filled, key)
		}
	}
	defaults, ok := defaultSteelMaterials[card.Law]
	if !ok {
		defaults = defaultSteelMaterials["LAW1"]
	}
	for _, key := range lawParamOrder[card.Law] {
		if _, ok := card.Params[key]; !ok {
			card.Params[key] = defaults[key]
			filled = append(filled, key)
		}
	}
	if len(filled) > 0 {
		d.note("material %d: completed %v from %s defaults", card.ID, filled, card.Law)
	}
	if len(card.Curve) > 0 {
		card.FunctID = d.alloc.Allocate(ident.ClassFunct, 0)
	}
	if card.Fail != nil {
		card.Fail = d.completeFailure(card.ID, card.Fail)
	}
	return card
}

func (d *Deck) completeFailure(matID int, fail *model.FailureModel) *model.FailureModel {
	out := &model.FailureModel{Type: fail.Type, Params: copyParams(fail.Params)}
	if out.Type == "" {
		out.Type = "FAIL/JOHNSON"
	}
	if out.Params == nil {
		out.Params = make(map[string]float64)
	}
	defaults := defaultFailureModels[out.Type]
	var filled []string
	for _, key := range failParamOrder[out.Type] {
		if _, ok := out.Params[key]; !ok {
			out.Params[key] = defaults[key]
			filled = append(filled, key)
		}
	}
	if len(filled) > 0 {
		d.note("material %d: completed %s coefficients %v", matID, out.Type, filled)
	}
	return out
}

// planSelections turns element selections into subsets and node
// selections into node groups. A purely numeric selection name keeps its
// number as the identifier; everything else is allocated above the
// current maximum of the shared numbering space.
func (d *Deck) planSelections() {
	referenced := make(map[string]bool)
	for _, pt := range d.Params.Parts {
		if pt.ElemSet != "" {
			referenced[pt.ElemSet] = true
		}
	}
	for _, sel := range d.Model.Selections {
		switch sel.Kind {
		case model.ElementSelection:
			if !d.Params.EmitSets && !referenced[sel.Name] {
				continue
			}
			id := d.alloc.Allocate(ident.ClassSubset, numericName(sel.Name))
			d.subsets = append(d.subsets, subsetCard{ID: id, Name: sel.Name, Members: sel.Members})
			d.subsetByName[sel.Name] = id
		case model.NodeSelection:
			if !d.Params.EmitSets {
				continue
			}
			id := d.alloc.Allocate(ident.ClassGrnod, numericName(sel.Name))
			d.grnods = append(d.grnods, grnodCard{ID: id, Name: sel.Name, Nodes: sel.Members})
			d.grnodByName[sel.Name] = id
		}
	}
}

func (d *Deck) planConfigMaterials() error {
	for _, mt := range d.Params.Materials {
		id := d.alloc.Allocate(ident.ClassMat, mt.ID)
		if mt.ID > 0 && id != mt.ID {
			d.note("material %d renumbered to %d (identifier in use)", mt.ID, id)
		}
		if mt.ID > 0 {
			if _, ok := d.matRemap[mt.ID]; !ok {
				d.matRemap[mt.ID] = id
			}
		}
		card := materialCard{
			ID:     id,
			Law:    mt.Law,
			Name:   mt.Name,
			Params: copyParams(mt.Params),
			Curve:  mt.Curve,
		}
		if mt.Fail != "" {
			card.Fail = &model.FailureModel{Type: mt.Fail, Params: copyParams(mt.FailParams)}
		}
		d.materials = append(d.materials, d.completeMaterial(card))
	}
	return nil
}

func (d *Deck) planPartsAndProps() error {
	for _, pr := range d.Params.Properties {
		id := pr.ID
		if id > 0 {
			if err := d.alloc.Reserve(ident.ClassProp, id); err != nil {
				return err
			}
		} else {
			id = d.alloc.Allocate(ident.ClassProp, 0)
		}
		d.props = append(d.props, propCard{
			ID:        id,
			Name:      defaultString(pr.Name, fmt.Sprintf("prop_%d", id)),
			Type:      defaultString(pr.Type, "SHELL"),
			Thickness: defaultFloat(pr.Thickness, 1.0),
		})
	}

	for _, pt := range d.Params.Parts {
		id := pt.ID
		if id > 0 {
			if err := d.alloc.Reserve(ident.ClassPart, id); err != nil {
				return err
			}
		} else {
			id = d.alloc.Allocate(ident.ClassPart, 0)
		}
		pid, err := d.resolveProperty(pt)
		if err != nil {
			return err
		}
		mid, err := d.resolveMaterial(pt)
		if err != nil {
			return err
		}
		subsetID := 0
		if pt.ElemSet != "" {
			sid, ok := d.subsetByName[pt.ElemSet]
			if !ok {
				return &model.UnresolvedReferenceError{Card: "/PART", Selection: pt.ElemSet}
			}
			subsetID = sid
		}
		d.parts = append(d.parts, partCard{
			ID:       id,
			Name:     defaultString(pt.Name, fmt.Sprintf("part_%d", id)),
			PID:      pid,
			MID:      mid,
			SubsetID: subsetID,
		})
	}

	if len(d.parts) == 0 && d.Params.AutoParts && len(d.Model.Elements) > 0 {
		return d.autoParts()
	}
	return nil
}

// resolveProperty maps a part's property reference, generating the
// property when it is referenced but undefined.
func (d *Deck) resolveProperty(pt InputParameters.Part) (int, error) {
	if pt.PID == 0 {
		if len(d.props) > 0 {
			return d.props[0].ID, nil
		}
		return d.autoProperty(0)
	}
	for _, pr := range d.props {
		if pr.ID == pt.PID {
			return pr.ID, nil
		}
	}
	if !d.Params.AutoProperties {
		return 0, &model.DanglingReferenceError{Kind: "part", ID: pt.ID, RefKind: "property", Ref: pt.PID}
	}
	return d.autoProperty(pt.PID)
}

func (d *Deck) autoProperty(preferred int) (int, error) {
	var id int
	if preferred > 0 {
		if err := d.alloc.Reserve(ident.ClassProp, preferred); err != nil {
			return 0, err
		}
		id = preferred
	} else {
		id = d.alloc.Allocate(ident.ClassProp, 1)
	}
	d.props = append(d.props, propCard{
		ID:        id,
		Name:      fmt.Sprintf("prop_%d", id),
		Type:      "SHELL",
		Thickness: 1.0,
	})
	d.note("property %d auto-generated (SHELL, thickness 1)", id)
	return id, nil
}

// resolveMaterial maps a part's material reference: configured materials
// first (following any renumbering), then source materials, then the
// default-material completion.
func (d *Deck) resolveMaterial(pt InputParameters.Part) (int, error) {
	if pt.MID == 0 {
		return d.defaultMaterial(0)
	}
	if id, ok := d.matRemap[pt.MID]; ok {
		return id, nil
	}
	for _, mc := range d.materials {
		if mc.ID == pt.MID {
			return mc.ID, nil
		}
	}
	return d.defaultMaterial(pt.MID)
}

// defaultMaterial synthesizes one generic linear-elastic record with
// structural-steel constants. A positive id is kept exactly; with no
// preference a single shared material is created once.
func (d *Deck) defaultMaterial(id int) (int, error) {
	if !d.Params.DefaultMaterial {
		return 0, &model.DanglingReferenceError{Kind: "part", RefKind: "material", Ref: id}
	}
	if id == 0 {
		if d.defaultMat != 0 {
			return d.defaultMat, nil
		}
		id = d.alloc.Allocate(ident.ClassMat, 1)
		d.defaultMat = id
	} else if err := d.alloc.Reserve(ident.ClassMat, id); err != nil {
		return 0, err
	}
	d.materials = append(d.materials, materialCard{
		ID:   id,
		Law:  "LAW1",
		Name: fmt.Sprintf("MAT_%d", id),
		Params: map[string]float64{
			"EX": DefaultYoung, "NUXY": DefaultPoisson, "DENS": DefaultDensity,
		},
	})
	d.note("material %d synthesized (LAW1 structural steel defaults)", id)
	return id, nil
}

// autoParts generates one part per subset, or a single part for the whole
// mesh when no subsets exist.
func (d *Deck) autoParts() error {
	pid, err := d.autoProperty(0)
	if err != nil {
		return err
	}
	mid := 0
	if len(d.materials) > 0 {
		mid = d.materials[0].ID
	} else if mid, err = d.defaultMaterial(0); err != nil {
		return err
	}
	if len(d.subsets) == 0 {
		id := d.alloc.Allocate(ident.ClassPart, 1)
		d.parts = append(d.parts, partCard{ID: id, Name: fmt.Sprintf("part_%d", id), PID: pid, MID: mid})
		d.note("part %d auto-generated", id)
		return nil
	}
	for i, sub := range d.subsets {
		id := d.alloc.Allocate(ident.ClassPart, i+1)
		d.parts = append(d.parts, partCard{
			ID:       id,
			Name:     sub.Name,
			PID:      pid,
			MID:      mid,
			SubsetID: sub.ID,
		})
		d.note("part %d auto-generated for subset %s", id, sub.Name)
	}
	return nil
}

func (d *Deck) planCards() error {
	for _, bc := range d.Params.BoundaryConditions {
		gid, err := d.nodeGroup(bc.Name, bc.Nodes, bc.Selection)
		if err != nil {
			return err
		}
		card := bcCard{
			Name:    defaultString(bc.Name, "bc"),
			Motion:  bc.Type == "PRESCRIBED_MOTION",
			Tra:     defaultString(bc.Tra, "000"),
			Rot:     defaultString(bc.Rot, "000"),
			Dir:     bc.Dir,
			Value:   bc.Value,
			GrnodID: gid,
		}
		d.bcs = append(d.bcs, card)
	}
	for _, itf := range d.Params.Interfaces {
		sg, err := d.nodeGroup(itf.Name+"_slave", itf.Slave, itf.SlaveSelection)
		if err != nil {
			return err
		}
		mg, err := d.nodeGroup(itf.Name+"_master", itf.Master, itf.MasterSelection)
		if err != nil {
			return err
		}
		d.inters = append(d.inters, interCard{
			Name:   defaultString(itf.Name, "contact"),
			Type:   defaultString(itf.Type, "TYPE7"),
			SlaveG: sg,
			MastG:  mg,
			Fric:   itf.Fric,
		})
	}
	if iv := d.Params.InitVelocity; iv != nil {
		gid, err := d.nodeGroup("init_velocity", iv.Nodes, iv.Selection)
		if err != nil {
			return err
		}
		d.impvel = &impvelCard{GrnodID: gid, VX: iv.VX, VY: iv.VY, VZ: iv.VZ}
	}
	for i, rb := range d.Params.RigidBodies {
		gid, err := d.nodeGroup(defaultString(rb.Name, "rbody"), rb.Nodes, rb.Selection)
		if err != nil {
			return err
		}
		d.rbodies = append(d.rbodies, rbodyCard{
			ID:         i + 1,
			Name:       defaultString(rb.Name, fmt.Sprintf("rbody_%d", i+1)),
			MasterNode: rb.MasterNode,
			GrnodID:    gid,
			Mass:       rb.Mass,
		})
	}
	for i, rb := range d.Params.RBE2 {
		gid, err := d.nodeGroup(defaultString(rb.Name, "rbe2"), rb.Nodes, rb.Selection)
		if err != nil {
			return err
		}
		d.rbe2s = append(d.rbe2s, rbe2Card{
			ID:         i + 1,
			Name:       defaultString(rb.Name, fmt.Sprintf("rbe2_%d", i+1)),
			MasterNode: rb.MasterNode,
			GrnodID:    gid,
		})
	}
	for i, rb := range d.Params.RBE3 {
		d.rbe3s = append(d.rbe3s, rbe3Card{
			ID:          i + 1,
			Name:        defaultString(rb.Name, fmt.Sprintf("rbe3_%d", i+1)),
			Dependent:   rb.Dependent,
			Independent: rb.Independent,
		})
	}
	return nil
}

// nodeGroup resolves a card's node list to a /GRNOD id: a named node
// selection reuses its planned group when one exists, anything else gets
// a group of its own.
func (d *Deck) nodeGroup(name string, nodes []int, selection string) (int, error) {
	if selection != "" {
		if gid, ok := d.grnodByName[selection]; ok {
			return gid, nil
		}
		sel := d.Model.Selection(selection, model.NodeSelection)
		if sel == nil {
			return 0, &model.UnresolvedReferenceError{Card: name, Selection: selection}
		}
		gid := d.alloc.Allocate(ident.ClassGrnod, numericName(selection))
		d.grnods = append(d.grnods, grnodCard{ID: gid, Name: selection, Nodes: sel.Members})
		d.grnodByName[selection] = gid
		return gid, nil
	}
	gid := d.alloc.Allocate(ident.ClassGrnod, 0)
	d.grnods = append(d.grnods, grnodCard{ID: gid, Name: name, Nodes: nodes})
	return gid, nil
}

// numericName returns a selection name's number when the name is purely
// numeric, otherwise 0 (no identifier preference).
func numericName(name string) int {
	if v, err := strconv.Atoi(name); err == nil && v > 0 {
		return v
	}
	return 0
}

func copyParams(in map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func defaultString(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func defaultFloat(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}

// sortedParamKeys is used when a card has free-form parameters with no
// documented order.
func sortedParamKeys(params map[string]float64) []string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
