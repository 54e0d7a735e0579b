// Package sequence turns the sequencing workbook into reconciled plans.
//
// Every cell is resolved against the catalog (elective codes map to their
// placeholders, "A OR B" cells become alternative slots). Each plan gets
// its own copies of the catalog courses before the classifier runs, so
// reconciling one plan never affects another or the catalog.
package sequence
