// Package i18n loads translation catalogs and negotiates the language of a
// request. A catalog is a yaml file named after its language tag; nested
// mappings are flattened into dotted keys.
package i18n
