package sqlinline

// Schema matches the importer's legacy layout. Payment ids are unix seconds
// concatenated with a contributor id, hence the wider column.

const QCreateContributorsTable = `--sql b93bb378-cd48-4a3c-8a12-c9470fe92543
create table if not exists contributors (
    contributor_id varchar(30) primary key,
    full_name      varchar(30)
);
`

const QCreatePaymentsTable = `--sql 221adb66-61ce-4902-8f43-d4c8cbea63e0
create table if not exists payments (
    id             varchar(64) unique,
    date           date,
    amount         double precision,
    contributor_id varchar(30)
);
`
