// Package docstore defines the document persistence contract: whole JSON
// documents upserted and fetched by key. The engine never performs partial
// updates, so the contract is deliberately small; backends live in sibling
// packages (memstore, redisstore, pgstore).
package docstore
