// Package versioning orders component version labels.
//
// Labels that look semantic (contain a dot or parse as a number, with an optional leading "v") sort
// newest first. Everything else (master, dev, next) bubbles above the semantic labels and sorts among
// itself in reverse reading order.
package versioning
