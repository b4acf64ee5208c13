package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/devassignment/member-service/internal/core/domain"
	"github.com/devassignment/member-service/internal/core/ports"
)

const membersCollection = "members"

type MemberRepository struct {
	coll *mongo.Collection
}

func NewMemberRepository(db *mongo.Database) *MemberRepository {
	return &MemberRepository{coll: db.Collection(membersCollection)}
}

// EnsureIndexes creates the necessary indexes on the members collection.
// The unique index on email is the real duplicate-email guarantee; the
// service-level existence check is only a fast path.
func (r *MemberRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "first_name", Value: 1}}},
		{Keys: bson.D{{Key: "last_name", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

func (r *MemberRepository) Create(ctx context.Context, m *domain.Member) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, m); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrEmailExists
		}
		return fmt.Errorf("insert member: %w", err)
	}
	return nil
}

func (r *MemberRepository) FindByID(ctx context.Context, id string) (*domain.Member, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var m domain.Member
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMemberNotFound
		}
		return nil, fmt.Errorf("find member: %w", err)
	}
	return &m, nil
}

func (r *MemberRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{"email": email}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count members by email: %w", err)
	}
	return n > 0, nil
}

func (r *MemberRepository) Update(ctx context.Context, m *domain.Member) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": m.ID}, m)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrEmailExists
		}
		return fmt.Errorf("update member: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrMemberNotFound
	}
	return nil
}

func (r *MemberRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete member: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrMemberNotFound
	}
	return nil
}

// List returns one page of members matching the query plus the total count
// of matching documents. Name filters become case-insensitive substring
// regexes combined with logical AND.
func (r *MemberRepository) List(ctx context.Context, q ports.ListMembersQuery) ([]*domain.Member, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := buildFilter(q)

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count members: %w", err)
	}

	opts := options.Find().
		SetSort(buildSort(q)).
		SetSkip(int64(q.Page) * int64(q.Size)).
		SetLimit(int64(q.Size))

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list members: %w", err)
	}
	defer cur.Close(ctx)

	members := make([]*domain.Member, 0, q.Size)
	if err := cur.All(ctx, &members); err != nil {
		return nil, 0, fmt.Errorf("decode members: %w", err)
	}
	return members, total, nil
}

// buildFilter translates name filters into case-insensitive substring
// regexes. User input is meta-quoted so it matches literally. An empty query
// yields an empty filter and matches everything.
func buildFilter(q ports.ListMembersQuery) bson.M {
	filter := bson.M{}
	if q.FirstName != "" {
		filter["first_name"] = containsRegex(q.FirstName)
	}
	if q.LastName != "" {
		filter["last_name"] = containsRegex(q.LastName)
	}
	return filter
}

func containsRegex(v string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(v), Options: "i"}
}

func buildSort(q ports.ListMembersQuery) bson.D {
	direction := 1
	if q.SortDesc {
		direction = -1
	}
	return bson.D{{Key: q.SortField, Value: direction}}
}
