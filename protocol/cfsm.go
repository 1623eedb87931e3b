// Package protocol builds formal models of the fork acquisition protocol.
//
// The table exclusion region is modelled as a machine (or channel) that every
// philosopher talks to. A philosopher asks for its forks, is told they are
// granted or busy, and later hands them back. The models can be checked by
// external tools for deadlock freedom and progress.
package protocol // import "github.com/nickng/dinephil/protocol"

import (
	"fmt"
	"io"

	"github.com/nickng/cfsm"
)

// Messages exchanged between philosophers and the table.
const (
	Acquire  = "acquire"
	Granted  = "granted"
	Busy     = "busy"
	Release  = "release"
	Released = "released"
	Done     = "done"
)

// CFSMs is a system of communicating finite state machines for a table.
type CFSMs struct {
	Sys          *cfsm.System
	Table        *cfsm.CFSM   // The exclusion region.
	Philosophers []*cfsm.CFSM // In ring order.
}

// NewCFSMs creates the machines for a table of n philosophers.
func NewCFSMs(n int) *CFSMs {
	sys := &CFSMs{Sys: cfsm.NewSystem()}
	sys.Table = sys.Sys.NewMachine()
	sys.Table.Comment = "table"
	for i := 0; i < n; i++ {
		m := sys.Sys.NewMachine()
		m.Comment = fmt.Sprintf("philosopher%d", i+1)
		sys.Philosophers = append(sys.Philosophers, m)
	}
	for _, m := range sys.Philosophers {
		sys.philosopherMachine(m)
	}
	sys.tableMachine()
	return sys
}

// philosopherMachine adds the states of a single philosopher.
//
//	q0 -- !acquire --> q1 -- ?granted --> q2 -- !release --> q3 -- ?released --> q0
//	q1 -- ?busy --> q0
//	q0 -- !done --> qEnd
func (sys *CFSMs) philosopherMachine(m *cfsm.CFSM) {
	q0 := m.NewState() // Thinking, or hungry after a busy reply.
	q1 := m.NewState() // Waiting for the table.
	q2 := m.NewState() // Eating.
	q3 := m.NewState() // Putting forks down.
	qEnd := m.NewState()

	sys.addSend(q0, q1, sys.Table, Acquire)
	sys.addRecv(q1, q2, sys.Table, Granted)
	sys.addRecv(q1, q0, sys.Table, Busy)
	sys.addSend(q2, q3, sys.Table, Release)
	sys.addRecv(q3, q0, sys.Table, Released)
	sys.addSend(q0, qEnd, sys.Table, Done)
	m.Start = q0
}

// tableMachine adds the states of the exclusion region. The table serves one
// request at a time, which is what makes the check-and-take indivisible.
func (sys *CFSMs) tableMachine() {
	m := sys.Table
	q0 := m.NewState()
	for _, p := range sys.Philosophers {
		// q0 -- ?acquire --> qReq -- !granted/!busy --> q0
		qReq := m.NewState()
		sys.addRecv(q0, qReq, p, Acquire)
		sys.addSend(qReq, q0, p, Granted)
		sys.addSend(qReq, q0, p, Busy)
		// q0 -- ?release --> qRel -- !released --> q0
		qRel := m.NewState()
		sys.addRecv(q0, qRel, p, Release)
		sys.addSend(qRel, q0, p, Released)
		// q0 -- ?done --> q0
		sys.addRecv(q0, q0, p, Done)
	}
	m.Start = q0
}

func (sys *CFSMs) addSend(from, to *cfsm.State, peer *cfsm.CFSM, msg string) {
	tr := cfsm.NewSend(peer, msg)
	tr.SetNext(to)
	from.AddTransition(tr)
}

func (sys *CFSMs) addRecv(from, to *cfsm.State, peer *cfsm.CFSM, msg string) {
	tr := cfsm.NewRecv(peer, msg)
	tr.SetNext(to)
	from.AddTransition(tr)
}

// WriteTo implements io.WriterTo interface.
func (sys *CFSMs) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write([]byte(sys.Sys.String()))
	return int64(n), err
}

// PrintSummary shows the machines of the system.
func (sys *CFSMs) PrintSummary(w io.Writer) {
	fmt.Fprintf(w, "Total of %d CFSMs (1 is the table)\n", len(sys.Philosophers)+1)
	fmt.Fprintf(w, "\t%d\t= %s\n", sys.Table.ID, sys.Table.Comment)
	for _, m := range sys.Philosophers {
		fmt.Fprintf(w, "\t%d\t= %s\n", m.ID, m.Comment)
	}
}
