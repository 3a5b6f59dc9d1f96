/*
Package config loads and validates rsr run options.

	            +-------------+
	            |   Config    |
	            | (Run opts)  |
	            +------+------+
	                   |
	      +------------+------------+
	      |            |            |
	+-----+----+ +-----+----+ +-----+----+
	|   YAML   | |   HCL    | |   JSON   |
	|  Parser  | |  Parser  | |  Parser  |
	+----------+ +----------+ +----------+

🎯 Purpose:
- Reads an optional config file chosen by extension
- Holds the same options as the command line flags
- Validates exclude globs and normalizes the root directory

🔄 Flow:
1. GetParser picks a registered Parser for the file name
2. The parser decodes into Config, rejecting unknown fields
3. Validate fills defaults
4. The command layer lays explicitly set flags over the result

📝 Notes:
Patterns stay as strings here. Compiling them is the caller's job, because a
bad regex degrades to "no pattern" instead of failing the run.

🔍 Example:

	cfg, err := config.Load(ctx, "rsr.yaml")
	if err != nil {
		return err
	}
	fmt.Println(cfg)
*/
package config
