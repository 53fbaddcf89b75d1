package writefiles

import (
	"io"
	"strings"
)

// unitLines maps the configured unit system to the /BEGIN unit rows.
var unitLines = map[string][3]string{
	"SI":       {"kg", "m", "s"},
	"Imperial": {"lb", "in", "s"},
}

// WriteStarter emits the full starter deck in the fixed card order the
// target solver expects: begin block, materials, mesh include, boundary
// conditions, node groups, properties/parts/subsets, then the optional
// contact, load, sensor and connector cards, and the end marker.
func (d *Deck) WriteStarter(w io.Writer) error {
	lw := &lineWriter{w: w}
	d.writeStarterCards(lw)
	lw.line("/END")
	return lw.err
}

func (d *Deck) writeStarterCards(lw *lineWriter) {
	lw.line("#RADIOSS STARTER")
	lw.line("/BEGIN")
	lw.line("%s", d.Params.RunName)
	lw.line("%10d%10d", 2022, 0)
	units, ok := unitLines[d.Params.UnitSystem]
	if !ok {
		units = unitLines["SI"]
	}
	unitRow := "%20s%20s%20s"
	lw.line(unitRow, units[0], units[1], units[2])
	lw.line(unitRow, units[0], units[1], units[2])
	if d.Params.Title != "" {
		lw.line("/TITLE")
		lw.line("%s", d.Params.Title)
	}

	for _, mc := range d.materials {
		d.writeMaterial(lw, mc)
	}

	if d.Params.IncludeMesh {
		lw.line("#include %s", d.Params.MeshFile)
	}

	d.writeBoundaryConditions(lw)
	d.writeGrnods(lw)
	d.writePartCards(lw)
	d.writeOptionalCards(lw)
}

func (d *Deck) writeMaterial(lw *lineWriter, mc materialCard) {
	lw.line("/MAT/%s/%d", mc.Law, mc.ID)
	lw.line("%s", mc.Name)
	lw.line("#              RHO_I")
	lw.line("%s", fw(mc.Params["DENS"]))
	lw.line("#                  E                  Nu")
	lw.line("%s%s", fw(mc.Params["EX"]), fw(mc.Params["NUXY"]))
	if order, ok := lawParamOrder[mc.Law]; ok {
		header := "#"
		row := ""
		for _, key := range order {
			header += alignKey(key)
			row += fw(mc.Params[key])
		}
		lw.line("%s", header)
		lw.line("%s", row)
	}
	if mc.FunctID > 0 {
		lw.line("# fct_IDp")
		lw.line("%s", iw(mc.FunctID))
	}
	if mc.Fail != nil {
		lw.line("/FAIL/%s/%d", strings.TrimPrefix(mc.Fail.Type, "FAIL/"), mc.ID)
		header := "#"
		row := ""
		for _, key := range failParamOrder[mc.Fail.Type] {
			header += alignKey(key)
			row += fw(mc.Fail.Params[key])
		}
		lw.line("%s", header)
		lw.line("%s", row)
	}
	if mc.FunctID > 0 {
		lw.line("/FUNCT/%d", mc.FunctID)
		lw.line("%s", mc.Name)
		lw.line("#                  X                   Y")
		for _, pt := range mc.Curve {
			lw.line("%s%s", fw(pt[0]), fw(pt[1]))
		}
	}
}

func (d *Deck) writeBoundaryConditions(lw *lineWriter) {
	nBCS, nMotion := 0, 0
	for _, bc := range d.bcs {
		if bc.Motion {
			nMotion++
			lw.line("/BOUNDARY/PRESCRIBED_MOTION/%d", nMotion)
			lw.line("%s", bc.Name)
			lw.line("#      Dir   Gnod_id")
			lw.line("%10d%10d", bc.Dir, bc.GrnodID)
			lw.line("%s", fnum(bc.Value))
			continue
		}
		nBCS++
		lw.line("/BCS/%d", nBCS)
		lw.line("%s", bc.Name)
		lw.line("#      Tra       Rot   skew_ID  grnod_ID")
		lw.line("%10s%10s%10d%10d", bc.Tra, bc.Rot, 0, bc.GrnodID)
	}
}

func (d *Deck) writeGrnods(lw *lineWriter) {
	for _, g := range d.grnods {
		lw.line("/GRNOD/NODE/%d", g.ID)
		lw.line("%s", g.Name)
		for _, nid := range g.Nodes {
			lw.line("%s", iw(nid))
		}
	}
}

func (d *Deck) writePartCards(lw *lineWriter) {
	for _, pr := range d.props {
		lw.line("/PROP/%s/%d", pr.Type, pr.ID)
		lw.line("%s", pr.Name)
		lw.line("#              Thick")
		lw.line("%s", fw(pr.Thickness))
	}
	for _, pt := range d.parts {
		lw.line("/PART/%d", pt.ID)
		lw.line("%s", pt.Name)
		lw.line("%10d%10d%10d", pt.PID, pt.MID, pt.SubsetID)
	}
	for _, sub := range d.subsets {
		lw.line("/SUBSET/%d", sub.ID)
		lw.line("%s", sub.Name)
		for i := 0; i < len(sub.Members); i += 10 {
			end := i + 10
			if end > len(sub.Members) {
				end = len(sub.Members)
			}
			row := ""
			for _, eid := range sub.Members[i:end] {
				row += iw(eid)
			}
			lw.line("%s", row)
		}
	}
}

func (d *Deck) writeOptionalCards(lw *lineWriter) {
	for i, itf := range d.inters {
		if itf.Type == "TYPE2" {
			lw.line("/INTER/TYPE2/%d", i+1)
			lw.line("%10d%10d", itf.SlaveG, itf.MastG)
			lw.line("/FRICTION")
			lw.line("%s", fnum(itf.Fric))
			continue
		}
		lw.line("/INTER/TYPE7/%d", i+1)
		lw.line("%s", itf.Name)
		lw.line("%10d%10d", itf.SlaveG, itf.MastG)
		lw.line("/FRICTION")
		lw.line("%s", fnum(itf.Fric))
	}
	if d.impvel != nil {
		lw.line("/IMPVEL/1")
		lw.line("init_velocity")
		lw.line("#                 Vx                  Vy                  Vz   Gnod_id")
		lw.line("%s%s%s%s", fw(d.impvel.VX), fw(d.impvel.VY), fw(d.impvel.VZ), iw(d.impvel.GrnodID))
	}
	if g := d.Params.Gravity; g != nil {
		lw.line("/GRAVITY")
		lw.line("%10d%10s", 0, fnum(g.G))
		lw.line("%s %s %s", fnum(g.NX), fnum(g.NY), fnum(g.NZ))
	}
	for i, sn := range d.Params.Sensors {
		lw.line("/SENSOR/TIME/%d", i+1)
		lw.line("%s", defaultString(sn.Name, "sensor"))
		lw.line("#             Tdelay")
		lw.line("%s", fw(sn.Tdelay))
	}
	for _, rb := range d.rbodies {
		lw.line("/RBODY/%d", rb.ID)
		lw.line("%s", rb.Name)
		lw.line("#   N_mast   Gnod_id     ISENS     NSKEW    ISPHER")
		lw.line("%10d%10d%10d%10d%10d", rb.MasterNode, rb.GrnodID, 0, 0, 0)
		lw.line("#               MASS")
		lw.line("%s", fw(rb.Mass))
		lw.line("#                JXX                 JYY                 JZZ")
		lw.line("%s%s%s", fw(0), fw(0), fw(0))
	}
	for _, rb := range d.rbe2s {
		lw.line("/RBE2/%d", rb.ID)
		lw.line("%s", rb.Name)
		lw.line("#   N_mast    Trarot")
		lw.line("%10d%10s", rb.MasterNode, "111111")
		lw.line("%s", iw(rb.GrnodID))
	}
	for _, rb := range d.rbe3s {
		lw.line("/RBE3/%d", rb.ID)
		lw.line("%s", rb.Name)
		lw.line("#    N_dep")
		lw.line("%s", iw(rb.Dependent))
		lw.line("#     node              weight")
		row := ""
		for _, pair := range rb.Independent {
			row += iw(int(pair[0])) + fw(pair[1])
		}
		lw.line("%s", row)
	}
}

// alignKey right-aligns a parameter name in the 20-column field its value
// occupies on the following line.
func alignKey(key string) string {
	const width = 20
	if len(key) >= width {
		return key
	}
	return strings.Repeat(" ", width-len(key)) + key
}
