// Package inno renders registry values as Inno Setup [Registry] section
// entries.
//
// Text values go through a fixed three-step transform before rendering:
//
//  1. .reg un-escaping (\\ becomes \, \" becomes "), quoted source text only
//  2. Inno constant escaping ({ becomes {{)
//  3. directory substitution (source dir becomes a placeholder such as {app})
//
// Step 2 runs before step 3 so braces in the placeholder survive as Inno
// constants. MultiSZ strings are joined with the {break} constant after all
// three steps, so the separator is never escaped either.
package inno
