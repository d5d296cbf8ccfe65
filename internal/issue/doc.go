// Package issue defines the issue-tracker records snitch reports on.
//
// Records arrive as the JSON array printed by
//
//	gh issue list --json number,title,labels,milestone,state,assignees,url
//
// and are decoded with Decode. The types are read-only inputs to the
// report package; nothing here talks to the network or the gh CLI.
//
// States are normalized on decode, so both the gh spelling ("OPEN") and the
// lowercase spelling ("open") end up as StateOpen.
package issue
