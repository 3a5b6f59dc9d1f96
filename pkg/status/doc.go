/*
Package status tallies what happened during a run.

	+-------------+
	|   Runner    |
	| (Traversal) |
	+------+------+
	       |
	+------+------+
	|   Summary   |
	|  (Counts)   |
	+------+------+
	       |
	+------+------+
	|    Table    |
	|   (pterm)   |
	+-------------+

🎯 Purpose:
- Names the outcome of each file (FileStatus)
- Counts outcomes and changed/declined/matching lines
- Renders the end of run table

📝 Design Philosophy:
Summary is plain data owned by a single traversal. It does no I/O; printing is
left to the caller so quiet runs never render it.
*/
package status
