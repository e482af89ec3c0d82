// Package worker contains the worker aggregate: the shop-floor account that
// performs process executions. Workers authenticate with a username and
// bcrypt password hash and carry a role that gates administrative views.
//
// References from execution history to workers are weak: deleting a worker
// account severs the reference but leaves the history intact.
package worker
