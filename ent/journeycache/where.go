// Code generated by ent, DO NOT EDIT.

package journeycache

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/aayasso/SlowMA-MVP/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.JourneyCache {
	return predicate.JourneyCache(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.JourneyCache {
	return predicate.JourneyCache(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.JourneyCache {
	return predicate.JourneyCache(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.JourneyCache {
	return predicate.JourneyCache(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.JourneyCache {
	return predicate.JourneyCache(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.JourneyCache {
	return predicate.JourneyCache(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.JourneyCache {
	return predicate.JourneyCache(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.JourneyCache {
	return predicate.JourneyCache(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.JourneyCache {
	return predicate.JourneyCache(sql.FieldLTE(FieldID, id))
}

// CacheKey applies equality check predicate on the "cache_key" field. It's identical to CacheKeyEQ.
func CacheKey(v string) predicate.JourneyCache {
	return predicate.JourneyCache(sql.FieldEQ(FieldCacheKey, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.JourneyCache {
	return predicate.JourneyCache(sql.FieldEQ(FieldCreatedAt, v))
}

// CacheKeyEQ applies the EQ predicate on the "cache_key" field.
func CacheKeyEQ(v string) predicate.JourneyCache {
	return predicate.JourneyCache(sql.FieldEQ(FieldCacheKey, v))
}

// CacheKeyNEQ applies the NEQ predicate on the "cache_key" field.
func CacheKeyNEQ(v string) predicate.JourneyCache {
	return predicate.JourneyCache(sql.FieldNEQ(FieldCacheKey, v))
}

// CacheKeyIn applies the In predicate on the "cache_key" field.
func CacheKeyIn(vs ...string) predicate.JourneyCache {
	return predicate.JourneyCache(sql.FieldIn(FieldCacheKey, vs...))
}

// CacheKeyNotIn applies the NotIn predicate on the "cache_key" field.
func CacheKeyNotIn(vs ...string) predicate.JourneyCache {
	return predicate.JourneyCache(sql.FieldNotIn(FieldCacheKey, vs...))
}

// CacheKeyGT applies the GT predicate on the "cache_key" field.
func CacheKeyGT(v string) predicate.JourneyCache {
	return predicate.JourneyCache(sql.FieldGT(FieldCacheKey, v))
}

// CacheKeyGTE applies the GTE predicate on the "cache_key" field.
func CacheKeyGTE(v string) predicate.JourneyCache {
	return predicate.JourneyCache(sql.FieldGTE(FieldCacheKey, v))
}

// CacheKeyLT applies the LT predicate on the "cache_key" field.
func CacheKeyLT(v string) predicate.JourneyCache {
	return predicate.JourneyCache(sql.FieldLT(FieldCacheKey, v))
}

// CacheKeyLTE applies the LTE predicate on the "cache_key" field.
func CacheKeyLTE(v string) predicate.JourneyCache {
	return predicate.JourneyCache(sql.FieldLTE(FieldCacheKey, v))
}

// CacheKeyContains applies the Contains predicate on the "cache_key" field.
func CacheKeyContains(v string) predicate.JourneyCache {
	return predicate.JourneyCache(sql.FieldContains(FieldCacheKey, v))
}

// CacheKeyHasPrefix applies the HasPrefix predicate on the "cache_key" field.
func CacheKeyHasPrefix(v string) predicate.JourneyCache {
	return predicate.JourneyCache(sql.FieldHasPrefix(FieldCacheKey, v))
}

// CacheKeyHasSuffix applies the HasSuffix predicate on the "cache_key" field.
func CacheKeyHasSuffix(v string) predicate.JourneyCache {
	return predicate.JourneyCache(sql.FieldHasSuffix(FieldCacheKey, v))
}

// CacheKeyEqualFold applies the EqualFold predicate on the "cache_key" field.
func CacheKeyEqualFold(v string) predicate.JourneyCache {
	return predicate.JourneyCache(sql.FieldEqualFold(FieldCacheKey, v))
}

// CacheKeyContainsFold applies the ContainsFold predicate on the "cache_key" field.
func CacheKeyContainsFold(v string) predicate.JourneyCache {
	return predicate.JourneyCache(sql.FieldContainsFold(FieldCacheKey, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.JourneyCache {
	return predicate.JourneyCache(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.JourneyCache {
	return predicate.JourneyCache(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.JourneyCache {
	return predicate.JourneyCache(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.JourneyCache {
	return predicate.JourneyCache(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.JourneyCache {
	return predicate.JourneyCache(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.JourneyCache {
	return predicate.JourneyCache(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.JourneyCache {
	return predicate.JourneyCache(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.JourneyCache {
	return predicate.JourneyCache(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.JourneyCache) predicate.JourneyCache {
	return predicate.JourneyCache(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.JourneyCache) predicate.JourneyCache {
	return predicate.JourneyCache(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.JourneyCache) predicate.JourneyCache {
	return predicate.JourneyCache(sql.NotPredicates(p))
}
