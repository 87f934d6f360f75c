package performance

// drawableConcept ObjectCollection内部使用的接口
type drawableConcept interface {
	draw(s *Sink)
}

// internalModel 每个具体类型T一份，独占所有权，不共享
type internalModel[T Drawable] struct {
	data T
}

func (m *internalModel[T]) draw(s *Sink) { m.data.Draw(s) }

// ObjectCollection 类型擦除的集合，元素类型之间不需要任何继承关系
type ObjectCollection struct {
	collection []drawableConcept
}

func NewObjectCollection(capacity int) *ObjectCollection {
	return &ObjectCollection{collection: make([]drawableConcept, 0, capacity)}
}

// AddObject 包装时为T实例化internalModel[T]。Go的方法不能带类型参数，所以是函数而不是方法
func AddObject[T Drawable](c *ObjectCollection, v T) {
	c.collection = append(c.collection, &internalModel[T]{data: v})
}

func (c *ObjectCollection) Len() int { return len(c.collection) }

func (c *ObjectCollection) Draw(s *Sink) {
	for _, x := range c.collection {
		if x == nil {
			panic("performance: nil element in object collection")
		}
		x.draw(s)
	}
}
