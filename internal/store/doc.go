// Package store defines interfaces for data persistence operations.
// These interfaces abstract the underlying data storage mechanism from
// the application's core logic. Rows are returned in their storage
// representation; conversion to wire types happens in the serializers.
package store
