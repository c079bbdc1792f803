// Package serializer converts host objects into plain data (maps, slices, text, numbers, booleans, nil, time)
// ready for a JSON or XML renderer.
//
// A Serializer is a configuration: selected fields, include/exclude sets, key renames, maximum depth
// and the serializer used for related objects. Traversal is recursive, depth-limited and cycle-safe:
// ancestors are tracked by reference identity and a field revisiting an ancestor, or exceeding the
// depth, is omitted unless a hook decides otherwise.
//
//	author := serializer.New("Author", serializer.WithFields(serializer.Names("name", "email")...))
//	post := serializer.New("Post",
//		serializer.WithDepth(2),
//		serializer.WithFields(serializer.F("title"), serializer.F("author", serializer.Use(author))),
//	)
//	data, err := post.Serialize(aPost)
//
// Mutually referencing serializers are declared in a Registry and linked with Registry.Link.
package serializer
