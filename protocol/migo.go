package protocol

import (
	"io"

	"github.com/nickng/migo/v3"
)

// chanVar is a channel name in a MiGo program.
type chanVar string

func (v chanVar) Name() string   { return string(v) }
func (v chanVar) String() string { return string(v) }

// lockChan is the channel standing in for the table exclusion region: a
// buffered channel of size 1 where send locks and receive unlocks.
const lockChan = chanVar("lock")

// Names of the MiGo functions of the model.
const (
	MainFunc   = "main.main"
	PhilFunc   = "main.phil"
	HungryFunc = "main.hungry"
)

// NewMigo creates a MiGo program of n philosophers sharing the table lock.
//
//	def main.main():
//	    let lock = newchan lock, 1;
//	    spawn main.phil(lock); ... (n times)
//	def main.phil(lock):
//	    if tau; else tau; call main.hungry(lock); endif;
//	def main.hungry(lock):
//	    tau; send lock;
//	    if recv lock; call main.hungry(lock);
//	    else recv lock; tau; send lock; recv lock; call main.phil(lock); endif;
func NewMigo(n int) *migo.Program {
	prog := migo.NewProgram()

	mainFn := migo.NewFunction(MainFunc)
	mainFn.AddStmts(&migo.NewChanStatement{Name: lockChan, Chan: lockChan.String(), Size: 1})
	for i := 0; i < n; i++ {
		mainFn.AddStmts(&migo.SpawnStatement{Name: PhilFunc, Params: lockParams()})
	}

	// Thinking: either done, or think then become hungry.
	philFn := migo.NewFunction(PhilFunc)
	philFn.AddParams(lockParams()...)
	philFn.AddStmts(&migo.IfStatement{
		Then: []migo.Statement{&migo.TauStatement{}},
		Else: []migo.Statement{
			&migo.TauStatement{},
			&migo.CallStatement{Name: HungryFunc, Params: lockParams()},
		},
	})

	// Hungry: pause, enter the region, find the forks busy or free.
	hungryFn := migo.NewFunction(HungryFunc)
	hungryFn.AddParams(lockParams()...)
	hungryFn.AddStmts(
		&migo.TauStatement{},
		&migo.SendStatement{Chan: lockChan.Name()},
		&migo.IfStatement{
			Then: []migo.Statement{
				&migo.RecvStatement{Chan: lockChan.Name()},
				&migo.CallStatement{Name: HungryFunc, Params: lockParams()},
			},
			Else: []migo.Statement{
				&migo.RecvStatement{Chan: lockChan.Name()},
				&migo.TauStatement{}, // eat
				&migo.SendStatement{Chan: lockChan.Name()},
				&migo.RecvStatement{Chan: lockChan.Name()},
				&migo.CallStatement{Name: PhilFunc, Params: lockParams()},
			},
		},
	)

	prog.AddFunction(mainFn)
	prog.AddFunction(philFn)
	prog.AddFunction(hungryFn)
	return prog
}

func lockParams() []*migo.Parameter {
	return []*migo.Parameter{{Caller: lockChan, Callee: lockChan}}
}

// WriteMigo writes the MiGo program of a table of n philosophers.
func WriteMigo(w io.Writer, n int) (int64, error) {
	written, err := io.WriteString(w, NewMigo(n).String())
	return int64(written), err
}
