/*
Package operation implements the per-file actions of a search & replace run.

	          +-------------+
	          |   Runner    |
	          | (Traversal) |
	          +------+------+
	                 |
	   +-------------+-------------+
	   |             |             |
	+--+-------+ +---+------+ +----+-----+
	| Rewriter | | Searcher | | Renamer  |
	| (Content)| | (Content)| |  (Name)  |
	+----------+ +----------+ +----------+

🎯 Purpose:
- Walks a directory tree depth first in file system order
- Filters files by name with a text.Matcher
- Rewrites, searches and renames matched files

🔄 Flow:
1. Runner lists a directory and recurses into subdirectories
2. A matched file is rewritten if a content template is set, else searched
3. Independently, a file name template renames the file
4. A matched file nothing happened to is printed

⚡ Key Responsibilities:
- Transactional rewrites through a sibling <name>.rsr_tmp
- Failure scoping: an error ends work on one file or one subtree, never the run
- Verbosity: skips are informational, failures are always printed

🤝 Interfaces:
- text.Matcher: matching and replacement
- prompt.Confirmer: per change confirmation
- log.Logger: console output
- status.Summary: outcome counts

🔍 Example:

	runner := operation.NewRunner(names, contents, operation.Options{
		Logger:    logger,
		Verbosity: log.VerbosityNormal,
		Confirm:   prompt.Always{},
	})
	summary := runner.Run(ctx, ".")
*/
package operation
