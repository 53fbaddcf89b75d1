package writefiles

import "io"

// WriteEngine emits the engine control deck. Each card is driven by one
// configuration setting and omitted when that setting is absent.
func (d *Deck) WriteEngine(w io.Writer) error {
	lw := &lineWriter{w: w}
	lw.line("#RADIOSS ENGINE")
	d.writeControlCards(lw)
	return lw.err
}

func (d *Deck) writeControlCards(lw *lineWriter) {
	p := d.Params
	if !p.EmitControlCards {
		return
	}
	if p.TEnd != nil {
		lw.line("/RUN/%s/1", p.RunName)
		lw.line("%s", fnum(*p.TEnd))
	}
	if p.AnimDT != nil {
		lw.line("/ANIM/DT")
		lw.line("%s %s", fnum(0), fnum(*p.AnimDT))
	}
	if p.TfileDT != nil {
		lw.line("/TFILE")
		lw.line("%s", fnum(*p.TfileDT))
	}
	if p.DTRatio != nil {
		lw.line("/DT/NODA/CST/0")
		lw.line("%s %s", fnum(*p.DTRatio), fnum(0))
	}
	if p.PrintN != nil {
		if p.PrintLine != nil {
			lw.line("/PRINT/%d/%d", *p.PrintN, *p.PrintLine)
		} else {
			lw.line("/PRINT/%d", *p.PrintN)
		}
	}
	if p.RfileN != nil {
		lw.line("/RFILE/%d", *p.RfileN)
		if p.RfileCycle != nil {
			lw.line("%d", *p.RfileCycle)
		}
	}
	if p.H3DDT != nil {
		lw.line("/H3D/DT")
		lw.line("%s %s", fnum(0), fnum(*p.H3DDT))
	}
	if p.Stop != nil {
		lw.line("/STOP")
		lw.line("%s %s %s %d %d %d",
			fnum(p.Stop.Emax), fnum(p.Stop.Mmax), fnum(p.Stop.Nmax),
			p.Stop.Nth, p.Stop.Nanim, p.Stop.Nerr)
	}
	if p.Adyrel != nil {
		lw.line("/ADYREL")
		lw.line("%s %s", fnum(p.Adyrel.Start), fnum(p.Adyrel.Stop))
	}
}

// WriteRad emits starter and engine cards into a single deck, the
// one-file form used for quick runs and previews. The control cards sit
// before the end marker so the combined text still closes with /END.
func (d *Deck) WriteRad(w io.Writer) error {
	lw := &lineWriter{w: w}
	d.writeStarterCards(lw)
	d.writeControlCards(lw)
	lw.line("/END")
	return lw.err
}
