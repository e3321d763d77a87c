// Package pipeline holds the pure lifecycle logic over in-memory application
// records: display ordering, ghosting detection, statistics, table filtering
// and optimistic change tracking. Nothing here touches the database or the clock
// except through the values passed in.
package pipeline
