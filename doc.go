// Command dinephil is a dining philosophers simulator.
//
// Philosophers take both of their forks in one step inside a table-wide lock,
// and retry after a short pause when either fork is busy. The policy never
// deadlocks but does not prevent starvation; the checkfair command measures
// how unevenly the forks were shared. The fork protocol can also be exported
// as CFSMs or MiGo types for external deadlock analysis.
package main
