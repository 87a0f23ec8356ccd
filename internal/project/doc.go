// Package project locates the root of the project tree that gbdev operates on.
//
// The root is the nearest directory, walking upward a bounded number of
// levels, that contains the version control marker. Every operation is
// expressed relative to it.
package project
