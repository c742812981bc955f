// Package catalog loads validation message templates from YAML or JSON files
// and installs them into a validator.Interpreter.
//
// Templates are keyed by tag sequence, the same key validator.TagKey builds,
// and may be overridden per type and field:
//
//	//go:embed messages
//	var messages embed.FS
//
//	cat, err := catalog.New(ctx, catalog.FSSource{FS: messages, Dir: "messages"})
//	if err != nil {
//	    return err
//	}
//	in := validator.NewInterpreter[Env]()
//	validator.AddBuiltinInterpretations(in)
//	catalog.Install(cat, in)
//	in.Apply(report, env)
//
// Placeholders use the %{name} form; see Render for the supported names.
// Sources are merged in order and later entries replace earlier ones.
package catalog
