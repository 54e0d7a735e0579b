// Package reconcile corrects the prerequisite/corequisite split of every
// course against one plan's actual term placement.
//
// For each plan separately:
//
//   - options of a requirement that the plan never schedules are pruned, and
//     a requirement left with no options is dropped;
//   - a corequisite none of whose options share the course's term becomes a
//     prerequisite;
//   - a prerequisite with an option in the course's term becomes a
//     corequisite.
//
// Requirements only ever move whole between the two lists. Reconcile works
// on a deep copy of the plan, so the same course may end up with different
// lists in different plans without the plans sharing any slice.
package reconcile
