// Package networks generates classic sorting networks for use as test
// inputs. These are convenience producers, not part of the verification
// core: nothing in planner or verify imports this package.
package networks
