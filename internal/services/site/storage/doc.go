// Package storage declares persistence interfaces for newsletter signups.
//
// The subscriber store is the only state the site owns. Pages never read from
// it, so every content route stays fully stateless.
package storage
