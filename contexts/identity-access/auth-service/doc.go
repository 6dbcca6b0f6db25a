// Package authservice contains the classbay identity verification and
// authorization policy module.
//
// The module keeps domain/application logic decoupled from runtime/platform
// concerns through ports and adapter composition.
package authservice
