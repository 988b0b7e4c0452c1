// Package enrich fills in missing episode ratings from OMDb, consulting a
// local cache before going to the network. Lookup failures never abort a run;
// the affected episode simply keeps its unknown rating.
package enrich
